package registry

import (
	"errors"
	"testing"
	"time"

	"hlc/internal/hlc"
)

var testWall = time.Date(2023, 12, 25, 10, 30, 45, 123456000, time.UTC)

// fakeClock is a settable wall-clock source.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestRegistry() (*Registry, *fakeClock) {
	clk := &fakeClock{now: testWall}
	return New().WithClock(clk.Now), clk
}

func TestRegistry_ZeroStateOnFirstReference(t *testing.T) {
	r, _ := newTestRegistry()

	if got := r.State("n1"); got != hlc.Zero("n1") {
		t.Errorf("State on first reference = %s, want the zero state", got)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistry_PureOperationsDoNotMutate(t *testing.T) {
	r, _ := newTestRegistry()

	r.Zero("n1")
	r.Now("n1")
	if _, err := r.FromDate("2023-12-25T10:30:45Z", "n1"); err != nil {
		t.Fatalf("FromDate failed: %v", err)
	}

	if r.Len() != 0 {
		t.Errorf("pure operations created %d entries, want 0", r.Len())
	}
}

func TestRegistry_Now(t *testing.T) {
	r, clk := newTestRegistry()

	ts := r.Now("n1")
	if ts.WallTime != clk.now.UnixMicro() || ts.Counter != 0 || ts.NodeID != "n1" {
		t.Errorf("Now = %+v, want injected wall reading with zero counter", ts)
	}
}

func TestRegistry_IncrementAdvancesState(t *testing.T) {
	r, clk := newTestRegistry()

	first, err := r.Increment("n1")
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if first.WallTime != testWall.UnixMicro() || first.Counter != 0 {
		t.Errorf("first increment = %+v, want wall reading with counter 0", first)
	}

	// Frozen clock: counter ticks.
	second, err := r.Increment("n1")
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if second.Counter != 1 || second.WallTime != first.WallTime {
		t.Errorf("second increment = %+v, want counter 1 at the same instant", second)
	}

	// Advanced clock: counter resets.
	clk.Advance(time.Second)
	third, err := r.Increment("n1")
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if third.Counter != 0 || third.WallTime != clk.now.UnixMicro() {
		t.Errorf("third increment = %+v, want counter reset at the new instant", third)
	}

	if got := r.State("n1"); got != third {
		t.Errorf("State = %s, want the last issued timestamp %s", got, third)
	}
}

func TestRegistry_IncrementAtOverride(t *testing.T) {
	r, _ := newTestRegistry()

	wall := testWall.Add(time.Hour)
	ts, err := r.IncrementAt("n1", wall)
	if err != nil {
		t.Fatalf("IncrementAt failed: %v", err)
	}
	if ts.WallTime != wall.UnixMicro() {
		t.Errorf("WallTime = %d, want the override reading", ts.WallTime)
	}
}

func TestRegistry_MergeUpdatesState(t *testing.T) {
	r, _ := newTestRegistry()

	remote := hlc.Timestamp{
		WallTime: testWall.Add(10 * time.Second).UnixMicro(),
		Counter:  4,
		NodeID:   "n2",
	}
	merged, err := r.Merge("n1", remote)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if merged.NodeID != "n1" {
		t.Errorf("merge result node = %q, want the local identity", merged.NodeID)
	}
	if merged.WallTime != remote.WallTime || merged.Counter != remote.Counter+1 {
		t.Errorf("merge result = %+v, want remote wall time with counter 5", merged)
	}
	if got := r.State("n1"); got != merged {
		t.Errorf("State = %s, want the merge result %s", got, merged)
	}
}

func TestRegistry_FailedOperationLeavesStateUnchanged(t *testing.T) {
	r, _ := newTestRegistry()

	before, err := r.Increment("n1")
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	// Self-merge is rejected and must not disturb the stored state.
	_, err = r.Merge("n1", hlc.Timestamp{WallTime: 1, Counter: 0, NodeID: "n1"})
	var dup *hlc.DuplicateNodeError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateNodeError", err)
	}
	if got := r.State("n1"); got != before {
		t.Errorf("State after failed merge = %s, want unchanged %s", got, before)
	}

	// A drifting remote is rejected and must not disturb the stored state.
	remote := hlc.Timestamp{
		WallTime: testWall.Add(time.Hour).UnixMicro(),
		Counter:  0,
		NodeID:   "n2",
	}
	_, err = r.Merge("n1", remote)
	var drift *hlc.ClockDriftError
	if !errors.As(err, &drift) {
		t.Fatalf("error = %v, want *ClockDriftError", err)
	}
	if got := r.State("n1"); got != before {
		t.Errorf("State after failed merge = %s, want unchanged %s", got, before)
	}
}

func TestRegistry_Reset(t *testing.T) {
	r, _ := newTestRegistry()

	if r.Reset("unknown") {
		t.Error("Reset on an unreferenced node should report false")
	}

	if _, err := r.Increment("n1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if !r.Reset("n1") {
		t.Error("Reset on an existing node should report true")
	}
	if got := r.State("n1"); got != hlc.Zero("n1") {
		t.Errorf("State after reset = %s, want the zero state", got)
	}
}

func TestRegistry_WithMaxDrift(t *testing.T) {
	r, _ := newTestRegistry()
	r.WithMaxDrift(time.Hour)

	remote := hlc.Timestamp{
		WallTime: testWall.Add(30 * time.Minute).UnixMicro(),
		Counter:  0,
		NodeID:   "n2",
	}
	if _, err := r.Merge("n1", remote); err != nil {
		t.Errorf("Merge within the configured drift budget failed: %v", err)
	}
}

func TestRegistry_IndependentNodes(t *testing.T) {
	r, _ := newTestRegistry()

	if _, err := r.Increment("n1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if _, err := r.Increment("n1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if _, err := r.Increment("n2"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	if got := r.State("n1").Counter; got != 1 {
		t.Errorf("n1 counter = %d, want 1", got)
	}
	if got := r.State("n2").Counter; got != 0 {
		t.Errorf("n2 counter = %d, want 0", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}
