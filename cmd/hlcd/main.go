package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"hlc/internal/config"
	"hlc/internal/logging"
	"hlc/internal/node"
	"hlc/internal/registry"
)

func main() {
	var (
		configPath = pflag.String("config", "", "path to a yaml config file")
		nodeID     = pflag.String("node-id", "", "node identity, overrides the config file")
		listen     = pflag.String("listen", "", "listen address, overrides the config file")
		maxDrift   = pflag.String("max-drift", "", "drift budget such as 1m, overrides the config file")
		logLevel   = pflag.String("log-level", "", "log level, overrides the config file")
	)
	pflag.Parse()

	if err := run(*configPath, *nodeID, *listen, *maxDrift, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, nodeID, listen, maxDrift, logLevel string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// Flags win over the file.
	if nodeID != "" {
		cfg.Node.ID = nodeID
	}
	if listen != "" {
		cfg.Node.ListenAddr = listen
	}
	if maxDrift != "" {
		cfg.Clock.MaxDrift = maxDrift
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	cfg.PopulateDefaults()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	drift, err := cfg.Clock.MaxDriftDuration()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logging.InitDefault(cfg.Node.ID, cfg.Log.Level)

	reg := registry.New().WithMaxDrift(drift)
	n := node.NewNode(cfg.Node.ID, cfg.Node.ListenAddr, reg)
	if err := n.Start(); err != nil {
		return fmt.Errorf("start node: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	slog.Info("shutting down", "signal", sig.String())
	n.Stop()
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Read(path)
}
