package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"field errors", models.FieldErrors{"email": "bad"}, http.StatusUnprocessableEntity},
		{"wrapped field errors", fmt.Errorf("register: %w", models.FieldErrors{"email": "bad"}), http.StatusUnprocessableEntity},
		{"taken email beats field errors", fieldErr(service.ErrEmailTaken, "email", "taken"), http.StatusConflict},
		{"cooldown", &service.CooldownError{RetryAfter: time.Second}, http.StatusTooManyRequests},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrong password", service.ErrWrongPassword, http.StatusForbidden},
		{"out of order", service.ErrStepOutOfOrder, http.StatusConflict},
		{"reset token", service.ErrResetTokenInvalid, http.StatusBadRequest},
		{"expired code", service.ErrCodeExpired, http.StatusBadRequest},
		{"report not found", fmt.Errorf("%w: %w", service.ErrReportNotFound, store.ErrReportNotFound), http.StatusNotFound},
		{"mail down", service.ErrMailDelivery, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(time.Millisecond))
	assert.Equal(t, 60, retryAfterSeconds(time.Minute))
}

func TestErrorText_HidesWrappedDetails(t *testing.T) {
	err := fmt.Errorf("%w: select failed on shard 3", service.ErrUserNotFound)
	assert.Equal(t, service.ErrUserNotFound.Error(), errorText(err))
}
