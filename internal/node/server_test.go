package node

import (
	"context"
	"testing"
	"time"

	hlcpb "hlc/internal/gen/api"
	"hlc/internal/registry"
)

var serverWall = time.Date(2023, 12, 25, 10, 30, 45, 123456000, time.UTC)

func newTestServer() *Server {
	reg := registry.New().WithClock(func() time.Time { return serverWall })
	return NewServer(reg)
}

func requireOK(t *testing.T, resp *hlcpb.TimestampResponse) *hlcpb.Timestamp {
	t.Helper()
	if resp.ErrorKind != hlcpb.ErrorKind_OK {
		t.Fatalf("unexpected error %v: %s", resp.ErrorKind, resp.ErrorMessage)
	}
	if resp.Timestamp == nil {
		t.Fatal("success response is missing a timestamp")
	}
	return resp.Timestamp
}

func TestServer_Zero(t *testing.T) {
	s := newTestServer()

	resp, err := s.Zero(context.Background(), &hlcpb.ZeroRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Zero failed: %v", err)
	}
	ts := requireOK(t, resp)
	if ts.PhysicalTime != 0 || ts.Counter != 0 || ts.NodeId != "n1" {
		t.Errorf("Zero = %+v, want epoch/0/n1", ts)
	}
}

func TestServer_Now(t *testing.T) {
	s := newTestServer()

	resp, err := s.Now(context.Background(), &hlcpb.NowRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Now failed: %v", err)
	}
	ts := requireOK(t, resp)
	if ts.PhysicalTime != serverWall.UnixMicro() || ts.Counter != 0 {
		t.Errorf("Now = %+v, want the wall reading with counter 0", ts)
	}
}

func TestServer_FromDate(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	resp, err := s.FromDate(ctx, &hlcpb.FromDateRequest{
		DateTime: "2023-12-25T10:30:45.123456Z",
		NodeId:   "n1",
	})
	if err != nil {
		t.Fatalf("FromDate failed: %v", err)
	}
	ts := requireOK(t, resp)
	if ts.PhysicalTime != serverWall.UnixMicro() {
		t.Errorf("PhysicalTime = %d, want %d", ts.PhysicalTime, serverWall.UnixMicro())
	}

	bad, err := s.FromDate(ctx, &hlcpb.FromDateRequest{DateTime: "yesterday", NodeId: "n1"})
	if err != nil {
		t.Fatalf("FromDate failed: %v", err)
	}
	if bad.ErrorKind != hlcpb.ErrorKind_PARSE_ERROR {
		t.Errorf("ErrorKind = %v, want PARSE_ERROR", bad.ErrorKind)
	}
}

func TestServer_EmptyNodeID(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	resp, err := s.Increment(ctx, &hlcpb.IncrementRequest{})
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if resp.ErrorKind != hlcpb.ErrorKind_PARSE_ERROR {
		t.Errorf("ErrorKind = %v, want PARSE_ERROR for an empty node_id", resp.ErrorKind)
	}
}

func TestServer_IncrementAndState(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	first, err := s.Increment(ctx, &hlcpb.IncrementRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	ts := requireOK(t, first)
	if ts.PhysicalTime != serverWall.UnixMicro() || ts.Counter != 0 {
		t.Errorf("first increment = %+v, want server wall reading with counter 0", ts)
	}

	second, err := s.Increment(ctx, &hlcpb.IncrementRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if got := requireOK(t, second); got.Counter != 1 {
		t.Errorf("second increment counter = %d, want 1", got.Counter)
	}

	state, err := s.State(ctx, &hlcpb.StateRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if got := requireOK(t, state); got.Counter != 1 {
		t.Errorf("state counter = %d, want the last issued value", got.Counter)
	}
}

func TestServer_IncrementWallOverride(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	override := serverWall.Add(time.Hour).Format(time.RFC3339Nano)
	resp, err := s.Increment(ctx, &hlcpb.IncrementRequest{NodeId: "n1", WallTime: override})
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	ts := requireOK(t, resp)
	if ts.PhysicalTime != serverWall.Add(time.Hour).UnixMicro() {
		t.Errorf("PhysicalTime = %d, want the override reading", ts.PhysicalTime)
	}

	bad, err := s.Increment(ctx, &hlcpb.IncrementRequest{NodeId: "n1", WallTime: "noon"})
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if bad.ErrorKind != hlcpb.ErrorKind_PARSE_ERROR {
		t.Errorf("ErrorKind = %v, want PARSE_ERROR for a bad override", bad.ErrorKind)
	}
}

func TestServer_MergeErrorKinds(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *hlcpb.MergeRequest
		expected hlcpb.ErrorKind
	}{
		{
			name:     "missing remote",
			req:      &hlcpb.MergeRequest{NodeId: "n1"},
			expected: hlcpb.ErrorKind_PARSE_ERROR,
		},
		{
			name: "self merge",
			req: &hlcpb.MergeRequest{
				NodeId: "n1",
				Remote: &hlcpb.Timestamp{PhysicalTime: 1, NodeId: "n1"},
			},
			expected: hlcpb.ErrorKind_DUPLICATE_NODE,
		},
		{
			name: "drifting remote",
			req: &hlcpb.MergeRequest{
				NodeId: "n1",
				Remote: &hlcpb.Timestamp{
					PhysicalTime: serverWall.Add(time.Hour).UnixMicro(),
					NodeId:       "n2",
				},
			},
			expected: hlcpb.ErrorKind_CLOCK_DRIFT,
		},
		{
			name: "counter out of range",
			req: &hlcpb.MergeRequest{
				NodeId: "n1",
				Remote: &hlcpb.Timestamp{PhysicalTime: 1, Counter: 0x10000, NodeId: "n2"},
			},
			expected: hlcpb.ErrorKind_PARSE_ERROR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Merge(ctx, tt.req)
			if err != nil {
				t.Fatalf("Merge failed: %v", err)
			}
			if resp.ErrorKind != tt.expected {
				t.Errorf("ErrorKind = %v, want %v (%s)", resp.ErrorKind, tt.expected, resp.ErrorMessage)
			}
		})
	}
}

func TestServer_Merge(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	remote := &hlcpb.Timestamp{
		PhysicalTime: serverWall.Add(10 * time.Second).UnixMicro(),
		Counter:      2,
		NodeId:       "n2",
	}
	resp, err := s.Merge(ctx, &hlcpb.MergeRequest{NodeId: "n1", Remote: remote})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	ts := requireOK(t, resp)
	if ts.NodeId != "n1" {
		t.Errorf("merge result node = %q, want the local identity", ts.NodeId)
	}
	if ts.PhysicalTime != remote.PhysicalTime || ts.Counter != 3 {
		t.Errorf("merge result = %+v, want remote time with counter 3", ts)
	}
}

func TestServer_CompareFormatParse(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	left := &hlcpb.Timestamp{PhysicalTime: 100, Counter: 1, NodeId: "a"}
	right := &hlcpb.Timestamp{PhysicalTime: 100, Counter: 2, NodeId: "a"}

	cmp, err := s.Compare(ctx, &hlcpb.CompareRequest{Left: left, Right: right})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if cmp.ErrorKind != hlcpb.ErrorKind_OK || cmp.Ordering != -1 {
		t.Errorf("Compare = %+v, want ordering -1", cmp)
	}

	missing, err := s.Compare(ctx, &hlcpb.CompareRequest{Left: left})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if missing.ErrorKind != hlcpb.ErrorKind_PARSE_ERROR {
		t.Errorf("ErrorKind = %v, want PARSE_ERROR for a missing operand", missing.ErrorKind)
	}

	format, err := s.Format(ctx, &hlcpb.FormatRequest{
		Timestamp: &hlcpb.Timestamp{PhysicalTime: 0, Counter: 10, NodeId: "node1"},
	})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if format.Encoded != "1970-01-01T00:00:00.000000Z-000A-node1" {
		t.Errorf("Format = %q, want canonical encoding", format.Encoded)
	}

	parse, err := s.Parse(ctx, &hlcpb.ParseRequest{Encoded: format.Encoded})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ts := requireOK(t, parse)
	if ts.PhysicalTime != 0 || ts.Counter != 10 || ts.NodeId != "node1" {
		t.Errorf("Parse = %+v, want the formatted timestamp back", ts)
	}

	bad, err := s.Parse(ctx, &hlcpb.ParseRequest{Encoded: "garbage"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if bad.ErrorKind != hlcpb.ErrorKind_PARSE_ERROR {
		t.Errorf("ErrorKind = %v, want PARSE_ERROR", bad.ErrorKind)
	}
}

func TestServer_Reset(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	resp, err := s.Reset(ctx, &hlcpb.ResetRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if resp.Existed {
		t.Error("Reset on an unreferenced node should report existed=false")
	}

	if _, err := s.Increment(ctx, &hlcpb.IncrementRequest{NodeId: "n1"}); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	resp, err = s.Reset(ctx, &hlcpb.ResetRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !resp.Existed {
		t.Error("Reset on an existing node should report existed=true")
	}

	state, err := s.State(ctx, &hlcpb.StateRequest{NodeId: "n1"})
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if got := requireOK(t, state); got.PhysicalTime != 0 || got.Counter != 0 {
		t.Errorf("state after reset = %+v, want the zero state", got)
	}
}
