package node

import (
	"errors"

	hlcpb "hlc/internal/gen/api"
	"hlc/internal/hlc"
)

// timestampToProto converts an internal timestamp to its protobuf shape.
func timestampToProto(ts hlc.Timestamp) *hlcpb.Timestamp {
	return &hlcpb.Timestamp{
		PhysicalTime: ts.WallTime,
		Counter:      ts.Counter,
		NodeId:       ts.NodeID,
	}
}

// protoToTimestamp converts a protobuf timestamp to the internal shape.
// The caller is responsible for validation.
func protoToTimestamp(pb *hlcpb.Timestamp) hlc.Timestamp {
	return hlc.Timestamp{
		WallTime: pb.PhysicalTime,
		Counter:  pb.Counter,
		NodeID:   pb.NodeId,
	}
}

// validateProtoTimestamp rejects shapes the engine cannot represent.
func validateProtoTimestamp(pb *hlcpb.Timestamp) string {
	switch {
	case pb == nil:
		return "timestamp is required"
	case pb.PhysicalTime < 0:
		return "timestamp physical_time cannot be negative"
	case pb.Counter > hlc.MaxCounter:
		return "timestamp counter exceeds 0xFFFF"
	case pb.NodeId == "":
		return "timestamp node_id cannot be empty"
	}
	return ""
}

// errorKind maps an engine error onto the wire taxonomy.
func errorKind(err error) hlcpb.ErrorKind {
	var (
		parseErr    *hlc.ParseError
		driftErr    *hlc.ClockDriftError
		overflowErr *hlc.OverflowError
		dupErr      *hlc.DuplicateNodeError
	)
	switch {
	case errors.As(err, &parseErr):
		return hlcpb.ErrorKind_PARSE_ERROR
	case errors.As(err, &driftErr):
		return hlcpb.ErrorKind_CLOCK_DRIFT
	case errors.As(err, &overflowErr):
		return hlcpb.ErrorKind_COUNTER_OVERFLOW
	case errors.As(err, &dupErr):
		return hlcpb.ErrorKind_DUPLICATE_NODE
	default:
		// The engine only produces the four kinds above; treat anything
		// else as malformed input.
		return hlcpb.ErrorKind_PARSE_ERROR
	}
}
