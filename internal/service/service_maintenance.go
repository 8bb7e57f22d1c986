package service

import (
	"context"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/models"
)

type maintenanceService struct {
	resetTokens store.ResetTokenRepository
	codes       store.VerificationCodeRepository
	logger      *logger.Logger
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(resetTokens store.ResetTokenRepository, codes store.VerificationCodeRepository, logger *logger.Logger) MaintenanceService {
	return &maintenanceService{resetTokens: resetTokens, codes: codes, logger: logger}
}

// PurgeExpired deletes reset tokens and verification codes that expired
// before now. Used reset tokens go too.
func (s *maintenanceService) PurgeExpired(ctx context.Context, now time.Time) (models.PurgeResult, error) {
	var (
		res models.PurgeResult
		err error
	)

	if res.ResetTokens, err = s.resetTokens.DeleteExpiredResetTokens(ctx, now); err != nil {
		return res, err
	}
	if res.Codes, err = s.codes.DeleteExpiredCodes(ctx, now); err != nil {
		return res, err
	}

	s.logger.Debug().
		Int64("reset_tokens", res.ResetTokens).
		Int64("codes", res.Codes).
		Str("func", "*maintenanceService.PurgeExpired").
		Msg("expired credentials purged")

	return res, nil
}
