package hlc

import (
	"fmt"
	"time"
)

// ParseError reports a malformed textual timestamp: a bad date segment,
// a bad counter segment, or an empty node ID.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid HLC %q: %s", e.Input, e.Reason)
}

// ClockDriftError reports that a wall-clock reading and the tracked
// physical time disagree by more than the configured maximum.
type ClockDriftError struct {
	Drift    time.Duration
	MaxDrift time.Duration
}

func (e *ClockDriftError) Error() string {
	return fmt.Sprintf("clock drift of %d minutes exceeds maximum of %d minutes",
		int64(e.Drift.Minutes()), int64(e.MaxDrift.Minutes()))
}

// OverflowError reports that the logical counter would exceed MaxCounter
// within a single microsecond tick.
type OverflowError struct {
	Counter uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("timestamp counter overflow: %d", e.Counter)
}

// DuplicateNodeError reports a merge with a remote timestamp issued by
// the local node itself, which indicates a message echoed back to its
// origin.
type DuplicateNodeError struct {
	NodeID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node: %s", e.NodeID)
}
