package hlc

import "time"

// DefaultMaxDrift bounds how far physical time components may run ahead
// of the local wall clock before increment and merge refuse to advance.
const DefaultMaxDrift = time.Minute

// Increment advances a node's clock state past its previous reading. The
// new physical time is the later of the wall reading and the previous
// physical time; the counter increments on a tie and resets to zero when
// the wall clock moved forward. The transition is pure: on error the
// caller's state is untouched.
func Increment(last Timestamp, wall time.Time, maxDrift time.Duration) (Timestamp, error) {
	wallMicros := wall.UnixMicro()

	next := Timestamp{WallTime: wallMicros, Counter: 0, NodeID: last.NodeID}
	if last.WallTime >= wallMicros {
		next.WallTime = last.WallTime
		next.Counter = last.Counter + 1
	}

	if next.Counter > MaxCounter {
		return Timestamp{}, &OverflowError{Counter: next.Counter}
	}
	if drift := microsToDuration(next.WallTime - wallMicros); drift > maxDrift {
		return Timestamp{}, &ClockDriftError{Drift: drift, MaxDrift: maxDrift}
	}
	return next, nil
}

// Merge reconciles a node's clock state with a timestamp received from
// another node, producing a state causally after both. The result always
// keeps the local node's identity; merging a timestamp issued by the
// local node itself fails with DuplicateNodeError. The transition is
// pure: on error the caller's state is untouched.
func Merge(last, remote Timestamp, wall time.Time, maxDrift time.Duration) (Timestamp, error) {
	if remote.NodeID == last.NodeID {
		return Timestamp{}, &DuplicateNodeError{NodeID: remote.NodeID}
	}

	wallMicros := wall.UnixMicro()
	localWall := max(wallMicros, last.WallTime)
	remoteWall := remote.WallTime

	next := Timestamp{NodeID: last.NodeID}
	switch {
	case remoteWall > localWall:
		// Remote is ahead of everything we know; tick past it.
		next.WallTime = remoteWall
		next.Counter = remote.Counter + 1
	case remoteWall == localWall && localWall == last.WallTime:
		// Three-way tie on physical time; tick past both counters.
		next.WallTime = localWall
		next.Counter = max(last.Counter, remote.Counter) + 1
	case remoteWall == localWall:
		// Wall clock advanced exactly to the remote's physical time.
		next.WallTime = localWall
		next.Counter = remote.Counter + 1
	case localWall == last.WallTime:
		// Remote is stale and the wall clock did not advance.
		next.WallTime = localWall
		next.Counter = last.Counter + 1
	default:
		// Remote is stale and the wall clock moved forward.
		next.WallTime = localWall
		next.Counter = 0
	}

	if next.Counter > MaxCounter {
		return Timestamp{}, &OverflowError{Counter: next.Counter}
	}
	if drift := microsToDuration(remoteWall - wallMicros); drift > maxDrift {
		return Timestamp{}, &ClockDriftError{Drift: drift, MaxDrift: maxDrift}
	}
	return next, nil
}

func microsToDuration(micros int64) time.Duration {
	return time.Duration(micros) * time.Microsecond
}
