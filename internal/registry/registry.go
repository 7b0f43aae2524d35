package registry

import (
	"sync"
	"time"

	"hlc/internal/hlc"
)

// WallClock returns the current wall-clock reading. Injecting it keeps
// drift and overflow boundaries deterministic under test.
type WallClock func() time.Time

// nodeState is the clock state owned by the registry for one node.
// Its mutex serializes increment and merge for that node only.
type nodeState struct {
	mu   sync.Mutex
	last hlc.Timestamp
}

// Registry maps node identifiers to their current clock state. A node's
// entry is created at the zero state on first reference and lives for
// the registry's lifetime. Operations on distinct nodes do not contend:
// the map lock is held only for lookup and insert.
type Registry struct {
	mu       sync.RWMutex
	nodes    map[string]*nodeState
	clock    WallClock
	maxDrift time.Duration
}

// New creates a registry backed by the system clock with the default
// drift budget.
func New() *Registry {
	return &Registry{
		nodes:    make(map[string]*nodeState),
		clock:    time.Now,
		maxDrift: hlc.DefaultMaxDrift,
	}
}

// WithClock replaces the wall-clock source.
func (r *Registry) WithClock(clock WallClock) *Registry {
	r.clock = clock
	return r
}

// WithMaxDrift replaces the maximum tolerated clock drift.
func (r *Registry) WithMaxDrift(maxDrift time.Duration) *Registry {
	r.maxDrift = maxDrift
	return r
}

// Zero returns the epoch timestamp for the given node. Pure: the
// registry is not touched.
func (r *Registry) Zero(nodeID string) hlc.Timestamp {
	return hlc.Zero(nodeID)
}

// Now returns a timestamp at the current wall-clock reading with a zero
// counter. Pure: the registry is not touched.
func (r *Registry) Now(nodeID string) hlc.Timestamp {
	return hlc.FromTime(r.clock(), nodeID)
}

// FromDate builds a timestamp from an RFC3339 date string. Pure: the
// registry is not touched.
func (r *Registry) FromDate(date, nodeID string) (hlc.Timestamp, error) {
	return hlc.FromDate(date, nodeID)
}

// Increment advances the node's clock against the registry's wall clock
// and stores the result. The state is unchanged on error.
func (r *Registry) Increment(nodeID string) (hlc.Timestamp, error) {
	return r.IncrementAt(nodeID, r.clock())
}

// IncrementAt is Increment with an explicit wall-clock reading.
func (r *Registry) IncrementAt(nodeID string, wall time.Time) (hlc.Timestamp, error) {
	ns := r.state(nodeID)
	ns.mu.Lock()
	defer ns.mu.Unlock()

	next, err := hlc.Increment(ns.last, wall, r.maxDrift)
	if err != nil {
		return hlc.Timestamp{}, err
	}
	ns.last = next
	return next, nil
}

// Merge reconciles the node's clock with a remote timestamp against the
// registry's wall clock and stores the result. The state is unchanged
// on error.
func (r *Registry) Merge(nodeID string, remote hlc.Timestamp) (hlc.Timestamp, error) {
	return r.MergeAt(nodeID, remote, r.clock())
}

// MergeAt is Merge with an explicit wall-clock reading.
func (r *Registry) MergeAt(nodeID string, remote hlc.Timestamp, wall time.Time) (hlc.Timestamp, error) {
	ns := r.state(nodeID)
	ns.mu.Lock()
	defer ns.mu.Unlock()

	next, err := hlc.Merge(ns.last, remote, wall, r.maxDrift)
	if err != nil {
		return hlc.Timestamp{}, err
	}
	ns.last = next
	return next, nil
}

// State returns the node's current clock state, creating the zero state
// on first reference.
func (r *Registry) State(nodeID string) hlc.Timestamp {
	ns := r.state(nodeID)
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.last
}

// Reset reinitializes the node's entry to the zero state. It reports
// whether the node had an entry; resetting an unknown node is a no-op.
func (r *Registry) Reset(nodeID string) bool {
	r.mu.RLock()
	ns, exists := r.nodes[nodeID]
	r.mu.RUnlock()
	if !exists {
		return false
	}

	ns.mu.Lock()
	ns.last = hlc.Zero(nodeID)
	ns.mu.Unlock()
	return true
}

// Len returns the number of node entries ever referenced.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// state returns the node's entry, inserting the zero state on first
// reference.
func (r *Registry) state(nodeID string) *nodeState {
	r.mu.RLock()
	ns, exists := r.nodes[nodeID]
	r.mu.RUnlock()
	if exists {
		return ns
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock
	if ns, exists := r.nodes[nodeID]; exists {
		return ns
	}
	ns = &nodeState{last: hlc.Zero(nodeID)}
	r.nodes[nodeID] = ns
	return ns
}
