package handler

import (
	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/handler/grpc"
	"github.com/saarzint/candle-recall/internal/handler/http"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every configured transport. storage is
// pinged by the gRPC health check.
func NewHandlers(services *service.Services, storage grpc.StoragePinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(storage, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
