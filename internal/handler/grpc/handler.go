// Package grpc implements the gRPC side of the Candle Recall server: the
// standard grpc.health.v1 service, reporting whether the database answers.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/saarzint/candle-recall/internal/logger"
)

// ServiceName is the service name clients may pass to Check in addition to
// the empty overall name.
const ServiceName = "candlerecall.Server"

const pingTimeout = 2 * time.Second

// StoragePinger is the part of the storage layer the health check needs.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler. It answers health checks by
// pinging the storage on every call.
type Handler struct {
	healthpb.UnimplementedHealthServer

	storage StoragePinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler] that reports the health of storage.
func NewHandler(storage StoragePinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		storage: storage,
		logger:  logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
}

// Check implements healthpb.HealthServer. Unknown service names answer
// SERVICE_UNKNOWN; a failed ping answers NOT_SERVING.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVICE_UNKNOWN}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Check").Msg("storage ping failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
