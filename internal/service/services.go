package service

import (
	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/models"
)

// Services groups the server services.
type Services struct {
	AuthService        AuthService
	AccountService     AccountService
	ReportService      ReportService
	AppInfoService     AppInfoService
	MaintenanceService MaintenanceService
}

// NewServices wires the services to the repositories. mailer delivers reset
// links and verification codes.
func NewServices(repos *store.Repositories, mailer Mailer, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(repos.UserRepository, repos.ResetTokenRepository, mailer, cfg, logger),
		AccountService:     NewAccountService(repos.UserRepository, repos.VerificationCodeRepository, mailer, cfg, logger),
		ReportService:      NewReportService(repos.ReportRepository, logger),
		AppInfoService:     appInfo,
		MaintenanceService: NewMaintenanceService(repos.ResetTokenRepository, repos.VerificationCodeRepository, logger),
	}, nil
}
