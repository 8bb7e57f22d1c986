// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
)

const defaultCleanupInterval = time.Hour

// CleanupWorker deletes expired reset tokens and verification codes on a
// fixed interval.
type CleanupWorker struct {
	maintenance service.MaintenanceService
	interval    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewCleanupWorker creates a CleanupWorker. A non-positive interval falls
// back to one hour.
func NewCleanupWorker(maintenance service.MaintenanceService, interval time.Duration, logger *logger.Logger) *CleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &CleanupWorker{
		maintenance: maintenance,
		interval:    interval,
		now:         time.Now,
		logger:      logger,
	}
}

// Run purges once right away, then on every tick until ctx is cancelled.
func (c *CleanupWorker) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("cleanup worker started")

	c.purge(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("cleanup worker stopped")
			return
		case <-ticker.C:
			c.purge(ctx)
		}
	}
}

func (c *CleanupWorker) purge(ctx context.Context) {
	result, err := c.maintenance.PurgeExpired(ctx, c.now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Str("func", "*CleanupWorker.purge").Msg("error purging expired credentials")
		}
		return
	}

	c.logger.Debug().
		Int64("reset_tokens", result.ResetTokens).
		Int64("codes", result.Codes).
		Msg("expired credentials purged")
}
