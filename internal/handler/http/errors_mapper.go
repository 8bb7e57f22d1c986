package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/store"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

// errorStatusMap is checked in order, so wrapped errors carrying more than
// one sentinel resolve to the first match.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrResendTooSoon, http.StatusTooManyRequests},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusForbidden},
	{service.ErrEmailTaken, http.StatusConflict},
	{service.ErrUsernameTaken, http.StatusConflict},
	{service.ErrSameEmail, http.StatusConflict},
	{service.ErrStepOutOfOrder, http.StatusConflict},
	{service.ErrResetTokenInvalid, http.StatusBadRequest},
	{service.ErrCodeInvalid, http.StatusBadRequest},
	{service.ErrCodeExpired, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrReportNotFound, http.StatusNotFound},
	{service.ErrMailDelivery, http.StatusBadGateway},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrReportNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}

	var fieldErrors models.FieldErrors
	if errors.As(err, &fieldErrors) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its status. Field errors go out as a
// ValidationErrorResponse, everything else as an ErrorResponse. Internal
// errors never leak their text.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		msg := http.StatusText(status)
		if traceID := utils.GetTraceIDFromContext(r.Context()); traceID != "" {
			msg += " (trace " + traceID + ")"
		}
		utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
		return
	}
	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")

	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(cooldown.RetryAfter)))
		utils.WriteJSON(w, models.ErrorResponse{Error: cooldown.Error()}, status)
		return
	}

	var fieldErrors models.FieldErrors
	if errors.As(err, &fieldErrors) {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: fieldErrors}, status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: errorText(err)}, status)
}

// errorText is the outermost sentinel message, without wrapped details.
func errorText(err error) string {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.target.Error()
		}
	}
	return err.Error()
}

// retryAfterSeconds rounds up so clients never retry early.
func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
