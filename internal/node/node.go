package node

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	hlcpb "hlc/internal/gen/api"
	"hlc/internal/registry"
)

// Node wires a clock registry to a listening gRPC server.
type Node struct {
	nodeID     string
	listenAddr string
	grpcServer *grpc.Server
	listener   net.Listener
	registry   *registry.Registry
}

// NewNode creates a new node instance around an existing registry.
func NewNode(nodeID, listenAddr string, reg *registry.Registry) *Node {
	return &Node{
		nodeID:     nodeID,
		listenAddr: listenAddr,
		registry:   reg,
	}
}

// Start begins listening and serving in the background.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}
	n.listener = lis

	n.grpcServer = grpc.NewServer()
	hlcpb.RegisterHLCServer(n.grpcServer, NewServer(n.registry))

	slog.Info("node listening", "node_id", n.nodeID, "addr", lis.Addr().String())
	go func() {
		if err := n.grpcServer.Serve(lis); err != nil {
			slog.Error("grpc server stopped", "node_id", n.nodeID, "error", err)
		}
	}()
	return nil
}

// Addr returns the bound listen address. Valid after Start.
func (n *Node) Addr() string {
	if n.listener == nil {
		return n.listenAddr
	}
	return n.listener.Addr().String()
}

// Registry returns the node's clock registry.
func (n *Node) Registry() *registry.Registry {
	return n.registry
}

// Stop drains in-flight requests and shuts the server down.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		n.grpcServer.GracefulStop()
	}
}
