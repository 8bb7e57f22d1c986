// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saarzint/candle-recall/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Field errors carried by err stay reachable through
// errors.As.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var rateLimit *adapter.RateLimitError
	if errors.As(err, &rateLimit) {
		return &CooldownError{RetryAfter: rateLimit.RetryAfter}
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrReportNotFound, err)

	case errors.Is(err, adapter.ErrConflict) && strings.Contains(err.Error(), ErrStepOutOfOrder.Error()):
		return fmt.Errorf("%w: %w", ErrStepOutOfOrder, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	return err
}
