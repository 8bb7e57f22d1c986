package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrNoAuthToken         = errors.New("authorization header is missing")
)

// RateLimitError is returned for 429 responses. RetryAfter comes from the
// Retry-After header and is zero when the header is missing.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry in %s", ErrTooManyRequests, e.RetryAfter)
}

// Is makes errors.Is(err, ErrTooManyRequests) match.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrTooManyRequests
}
