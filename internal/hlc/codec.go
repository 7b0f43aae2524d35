package hlc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeLayout is the canonical rendering of the physical time component:
// microsecond precision with a literal UTC designator.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Format renders a timestamp as "ISO8601-COUNTER-NODEID": the physical
// time with microsecond precision and a trailing Z, the counter as four
// uppercase hex digits, and the raw node ID.
func Format(t Timestamp) string {
	return fmt.Sprintf("%s-%04X-%s", t.Time().Format(timeLayout), t.Counter, t.NodeID)
}

// Parse decodes a canonical timestamp string. The date-time segment ends
// at the literal Z, the counter segment must be exactly four hex digits,
// and everything after the second separator is the node ID, which may
// itself contain hyphens. Parse(Format(t)) == t for all valid timestamps.
func Parse(s string) (Timestamp, error) {
	zi := strings.IndexByte(s, 'Z')
	if zi < 0 {
		return Timestamp{}, &ParseError{Input: s, Reason: "missing UTC designator in date-time segment"}
	}
	datePart := s[:zi+1]
	rest := s[zi+1:]

	if len(rest) == 0 || rest[0] != '-' {
		return Timestamp{}, &ParseError{Input: s, Reason: "missing counter segment"}
	}
	rest = rest[1:]
	sep := strings.IndexByte(rest, '-')
	if sep < 0 {
		return Timestamp{}, &ParseError{Input: s, Reason: "missing node ID segment"}
	}
	counterPart := rest[:sep]
	nodeID := rest[sep+1:]

	wall, err := parseWallTime(datePart)
	if err != nil {
		return Timestamp{}, &ParseError{Input: s, Reason: err.Error()}
	}

	if len(counterPart) != 4 {
		return Timestamp{}, &ParseError{Input: s, Reason: "counter segment must be exactly 4 hex digits"}
	}
	counter, err := strconv.ParseUint(counterPart, 16, 32)
	if err != nil {
		return Timestamp{}, &ParseError{Input: s, Reason: "counter segment must be exactly 4 hex digits"}
	}

	if nodeID == "" {
		return Timestamp{}, &ParseError{Input: s, Reason: "node ID segment is empty"}
	}

	return Timestamp{WallTime: wall, Counter: uint32(counter), NodeID: nodeID}, nil
}

// FromDate builds a timestamp with a zero counter from an RFC3339 date
// string. Unlike Parse it accepts any fractional precision and zone
// offset; the instant is normalized to UTC and truncated to microseconds.
func FromDate(date, nodeID string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return Timestamp{}, &ParseError{Input: date, Reason: "invalid date-time format"}
	}
	if t.UnixMicro() < 0 {
		return Timestamp{}, &ParseError{Input: date, Reason: "date-time precedes the Unix epoch"}
	}
	return FromTime(t, nodeID), nil
}

// parseWallTime decodes the canonical date-time segment into microseconds
// since the epoch.
func parseWallTime(s string) (int64, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("date-time segment must be ISO8601 with microsecond precision")
	}
	micros := t.UnixMicro()
	if micros < 0 {
		return 0, fmt.Errorf("date-time segment precedes the Unix epoch")
	}
	return micros, nil
}
