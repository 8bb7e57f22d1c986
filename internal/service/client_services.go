package service

import (
	"github.com/saarzint/candle-recall/internal/adapter"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	AccountService ClientAccountService
	ReportService  ClientReportService
	SessionJob     ClientSessionJob
}

func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(sessions, serverAdapter, logger)

	return &ClientServices{
		AuthService:    authSvc,
		AccountService: NewClientAccountService(sessions, serverAdapter, logger),
		ReportService:  NewClientReportService(serverAdapter),
		SessionJob:     NewClientSessionJob(authSvc),
	}
}
