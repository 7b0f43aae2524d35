package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	hlcpb "hlc/internal/gen/api"
)

// Connection timeout
const dialTimeout = 5 * time.Second

// ClientManager manages gRPC clients to clock nodes.
type ClientManager struct {
	mu      sync.RWMutex
	conns   map[string]*grpc.ClientConn
	clients map[string]hlcpb.HLCClient
}

// NewClientManager creates a new client manager.
func NewClientManager() *ClientManager {
	return &ClientManager{
		conns:   make(map[string]*grpc.ClientConn),
		clients: make(map[string]hlcpb.HLCClient),
	}
}

// GetClient returns a gRPC client for the given node address.
// Creates a new connection if one doesn't exist.
func (cm *ClientManager) GetClient(addr string) (hlcpb.HLCClient, error) {
	cm.mu.RLock()
	client, exists := cm.clients[addr]
	cm.mu.RUnlock()

	if exists {
		return client, nil
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := cm.clients[addr]; exists {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	client = hlcpb.NewHLCClient(conn)
	cm.conns[addr] = conn
	cm.clients[addr] = client
	return client, nil
}

// Close tears down every cached connection.
func (cm *ClientManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for addr, conn := range cm.conns {
		_ = conn.Close()
		delete(cm.conns, addr)
		delete(cm.clients, addr)
	}
}
