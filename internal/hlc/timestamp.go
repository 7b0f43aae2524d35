package hlc

import (
	"strings"
	"time"
)

// MaxCounter is the largest logical counter value a timestamp can carry.
// Exceeding it within a single microsecond tick is a counter overflow.
const MaxCounter uint32 = 0xFFFF

// Timestamp is a single hybrid logical clock reading. It is an immutable
// value type: WallTime is microseconds since the Unix epoch (never
// negative), Counter is the logical tie-break in [0, MaxCounter], and
// NodeID identifies the issuing node. Two timestamps are equal iff all
// three fields are equal.
type Timestamp struct {
	WallTime int64
	Counter  uint32
	NodeID   string
}

// Zero returns the timestamp at the beginning of time for the given node.
func Zero(nodeID string) Timestamp {
	return Timestamp{WallTime: 0, Counter: 0, NodeID: nodeID}
}

// FromTime returns a timestamp at the given instant with a zero counter.
// The instant is truncated to microsecond resolution.
func FromTime(t time.Time, nodeID string) Timestamp {
	return Timestamp{WallTime: t.UnixMicro(), Counter: 0, NodeID: nodeID}
}

// Time returns the physical time component as a UTC instant.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(t.WallTime).UTC()
}

// Compare returns -1, 0 or 1 depending on whether a orders before, equal
// to, or after b. Comparison is lexicographic, most significant first:
// wall time, then counter, then node ID (byte-wise).
func Compare(a, b Timestamp) int {
	if a.WallTime < b.WallTime {
		return -1
	}
	if a.WallTime > b.WallTime {
		return 1
	}
	if a.Counter < b.Counter {
		return -1
	}
	if a.Counter > b.Counter {
		return 1
	}
	return strings.Compare(a.NodeID, b.NodeID)
}

// Equal reports whether t and other are the same timestamp.
func (t Timestamp) Equal(other Timestamp) bool {
	return t == other
}

// Before reports whether t orders strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return Compare(t, other) < 0
}

// After reports whether t orders strictly after other.
func (t Timestamp) After(other Timestamp) bool {
	return Compare(t, other) > 0
}

// String returns the canonical textual representation.
func (t Timestamp) String() string {
	return Format(t)
}
