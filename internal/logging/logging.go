package logging

import (
	"log/slog"
	"os"
	"strings"
)

var logLevelMapping = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// InitDefault installs a JSON slog handler tagged with the node ID as
// the process-wide default. The LOG_LEVEL environment variable overrides
// the configured level.
func InitDefault(nodeID, level string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}

	logLevel, ok := logLevelMapping[strings.ToLower(level)]
	if !ok {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("node_id", nodeID)
	slog.SetDefault(logger)
}
