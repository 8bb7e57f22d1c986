// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saarzint/candle-recall/internal/service"
)

const msgServerUnavailable = "No network connection or the server is unavailable."

var errorTexts = []struct {
	target error
	text   string
}{
	{service.ErrInvalidCredentials, "Invalid email or password."},
	{service.ErrWrongPassword, "The password is incorrect."},
	{service.ErrSessionExpired, "Your session has expired. Please sign in again."},
	{service.ErrReportNotFound, "This report no longer exists."},
	{service.ErrStepOutOfOrder, "The email change was interrupted. Please start again."},
	{service.ErrCodeExpired, "The code has expired. Request a new one."},
	{service.ErrCodeInvalid, "The code is incorrect."},
	{service.ErrResetTokenInvalid, "The reset link is invalid or has expired."},
}

// humanizeError turns a service error into a sentence for the error banner.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("Please wait %s before trying again.", formatCountdown(cooldown.RetryAfter))
	}

	for _, e := range errorTexts {
		if errors.Is(err, e.target) {
			return e.text
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
