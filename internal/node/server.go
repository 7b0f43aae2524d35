package node

import (
	"context"
	"log/slog"
	"time"

	hlcpb "hlc/internal/gen/api"
	"hlc/internal/hlc"
	"hlc/internal/registry"
)

// Server implements the HLC gRPC service on top of a clock registry.
type Server struct {
	hlcpb.UnimplementedHLCServer
	registry *registry.Registry
}

// NewServer creates a new gRPC server instance.
func NewServer(reg *registry.Registry) *Server {
	return &Server{registry: reg}
}

// Zero handles Zero requests.
func (s *Server) Zero(ctx context.Context, req *hlcpb.ZeroRequest) (*hlcpb.TimestampResponse, error) {
	slog.Debug("zero request", "node_id", req.NodeId)

	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}
	return timestampSuccess(s.registry.Zero(req.NodeId)), nil
}

// Now handles Now requests.
func (s *Server) Now(ctx context.Context, req *hlcpb.NowRequest) (*hlcpb.TimestampResponse, error) {
	slog.Debug("now request", "node_id", req.NodeId)

	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}
	return timestampSuccess(s.registry.Now(req.NodeId)), nil
}

// FromDate handles FromDate requests.
func (s *Server) FromDate(ctx context.Context, req *hlcpb.FromDateRequest) (*hlcpb.TimestampResponse, error) {
	slog.Debug("from_date request", "node_id", req.NodeId, "date_time", req.DateTime)

	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}
	ts, err := s.registry.FromDate(req.DateTime, req.NodeId)
	if err != nil {
		return timestampError(err), nil
	}
	return timestampSuccess(ts), nil
}

// Increment handles Increment requests.
func (s *Server) Increment(ctx context.Context, req *hlcpb.IncrementRequest) (*hlcpb.TimestampResponse, error) {
	slog.Debug("increment request", "node_id", req.NodeId, "wall_time", req.WallTime)

	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}

	var (
		ts  hlc.Timestamp
		err error
	)
	if req.WallTime == "" {
		ts, err = s.registry.Increment(req.NodeId)
	} else {
		var wall time.Time
		wall, err = parseWallOverride(req.WallTime)
		if err == nil {
			ts, err = s.registry.IncrementAt(req.NodeId, wall)
		}
	}
	if err != nil {
		slog.Debug("increment rejected", "node_id", req.NodeId, "error", err)
		return timestampError(err), nil
	}
	return timestampSuccess(ts), nil
}

// Merge handles Merge requests.
func (s *Server) Merge(ctx context.Context, req *hlcpb.MergeRequest) (*hlcpb.TimestampResponse, error) {
	slog.Debug("merge request", "node_id", req.NodeId, "remote", req.Remote)

	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}
	if reason := validateProtoTimestamp(req.Remote); reason != "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "remote "+reason), nil
	}
	remote := protoToTimestamp(req.Remote)

	var (
		ts  hlc.Timestamp
		err error
	)
	if req.WallTime == "" {
		ts, err = s.registry.Merge(req.NodeId, remote)
	} else {
		var wall time.Time
		wall, err = parseWallOverride(req.WallTime)
		if err == nil {
			ts, err = s.registry.MergeAt(req.NodeId, remote, wall)
		}
	}
	if err != nil {
		slog.Debug("merge rejected", "node_id", req.NodeId, "error", err)
		return timestampError(err), nil
	}
	return timestampSuccess(ts), nil
}

// Compare handles Compare requests.
func (s *Server) Compare(ctx context.Context, req *hlcpb.CompareRequest) (*hlcpb.CompareResponse, error) {
	if reason := validateProtoTimestamp(req.Left); reason != "" {
		return &hlcpb.CompareResponse{
			ErrorKind:    hlcpb.ErrorKind_PARSE_ERROR,
			ErrorMessage: "left " + reason,
		}, nil
	}
	if reason := validateProtoTimestamp(req.Right); reason != "" {
		return &hlcpb.CompareResponse{
			ErrorKind:    hlcpb.ErrorKind_PARSE_ERROR,
			ErrorMessage: "right " + reason,
		}, nil
	}

	ordering := hlc.Compare(protoToTimestamp(req.Left), protoToTimestamp(req.Right))
	return &hlcpb.CompareResponse{Ordering: int32(ordering)}, nil
}

// Format handles Format requests.
func (s *Server) Format(ctx context.Context, req *hlcpb.FormatRequest) (*hlcpb.FormatResponse, error) {
	if reason := validateProtoTimestamp(req.Timestamp); reason != "" {
		return &hlcpb.FormatResponse{
			ErrorKind:    hlcpb.ErrorKind_PARSE_ERROR,
			ErrorMessage: reason,
		}, nil
	}
	return &hlcpb.FormatResponse{
		Encoded: hlc.Format(protoToTimestamp(req.Timestamp)),
	}, nil
}

// Parse handles Parse requests.
func (s *Server) Parse(ctx context.Context, req *hlcpb.ParseRequest) (*hlcpb.TimestampResponse, error) {
	ts, err := hlc.Parse(req.Encoded)
	if err != nil {
		return timestampError(err), nil
	}
	return timestampSuccess(ts), nil
}

// Reset handles Reset requests.
func (s *Server) Reset(ctx context.Context, req *hlcpb.ResetRequest) (*hlcpb.ResetResponse, error) {
	slog.Debug("reset request", "node_id", req.NodeId)

	if req.NodeId == "" {
		return &hlcpb.ResetResponse{
			ErrorKind:    hlcpb.ErrorKind_PARSE_ERROR,
			ErrorMessage: "node_id cannot be empty",
		}, nil
	}
	return &hlcpb.ResetResponse{Existed: s.registry.Reset(req.NodeId)}, nil
}

// State handles State requests.
func (s *Server) State(ctx context.Context, req *hlcpb.StateRequest) (*hlcpb.TimestampResponse, error) {
	if req.NodeId == "" {
		return timestampFailure(hlcpb.ErrorKind_PARSE_ERROR, "node_id cannot be empty"), nil
	}
	return timestampSuccess(s.registry.State(req.NodeId)), nil
}

// parseWallOverride decodes an explicit wall-clock reading from a
// request.
func parseWallOverride(value string) (time.Time, error) {
	wall, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, &hlc.ParseError{Input: value, Reason: "invalid wall_time override"}
	}
	return wall, nil
}

func timestampSuccess(ts hlc.Timestamp) *hlcpb.TimestampResponse {
	return &hlcpb.TimestampResponse{Timestamp: timestampToProto(ts)}
}

func timestampFailure(kind hlcpb.ErrorKind, message string) *hlcpb.TimestampResponse {
	return &hlcpb.TimestampResponse{ErrorKind: kind, ErrorMessage: message}
}

func timestampError(err error) *hlcpb.TimestampResponse {
	return timestampFailure(errorKind(err), err.Error())
}
