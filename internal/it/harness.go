package it

import (
	"fmt"
	"sync"
	"time"

	hlcpb "hlc/internal/gen/api"
	"hlc/internal/node"
	"hlc/internal/registry"
)

// Cluster represents a test cluster of in-process nodes
type Cluster struct {
	nodes   []*Node
	clients *node.ClientManager
	mu      sync.Mutex
}

// Node represents a single node in the test cluster
type Node struct {
	ID     string
	Addr   string
	inner  *node.Node
	client hlcpb.HLCClient
}

// NewCluster creates a new test cluster harness
func NewCluster() *Cluster {
	return &Cluster{
		nodes:   make([]*Node, 0),
		clients: node.NewClientManager(),
	}
}

// StartNode starts a single node on a loopback port chosen by the OS
func (c *Cluster) StartNode(nodeID string, clock registry.WallClock) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	reg := registry.New()
	if clock != nil {
		reg = reg.WithClock(clock)
	}

	n := node.NewNode(nodeID, "127.0.0.1:0", reg)
	if err := n.Start(); err != nil {
		return fmt.Errorf("failed to start node %s: %w", nodeID, err)
	}

	client, err := c.clients.GetClient(n.Addr())
	if err != nil {
		n.Stop()
		return fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}

	c.nodes = append(c.nodes, &Node{
		ID:     nodeID,
		Addr:   n.Addr(),
		inner:  n,
		client: client,
	})
	return nil
}

// StartCluster starts a 3-node cluster sharing a fixed wall clock
func (c *Cluster) StartCluster() error {
	wall := time.Now()
	clock := func() time.Time { return wall }

	for i := 1; i <= 3; i++ {
		nodeID := fmt.Sprintf("n%d", i)
		if err := c.StartNode(nodeID, clock); err != nil {
			c.Stop()
			return fmt.Errorf("failed to start node %s: %w", nodeID, err)
		}
	}
	return nil
}

// GetNode returns a node by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.ID == nodeID {
			return n
		}
	}
	return nil
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clients.Close()
	for _, n := range c.nodes {
		n.inner.Stop()
	}
	c.nodes = nil
}

// GetClient returns the HLC client for a node
func (n *Node) GetClient() hlcpb.HLCClient {
	return n.client
}
