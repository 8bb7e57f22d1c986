package models

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to the message that should be shown
// under that field. It is returned by the server with status 422 and
// applied by the client as external field errors.
type FieldErrors map[string]string

// Error implements the error interface.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless msg is empty or the field already has one.
func (e FieldErrors) Add(field, msg string) {
	if msg == "" {
		return
	}
	if _, ok := e[field]; ok {
		return
	}
	e[field] = msg
}

// Get returns the message for field or an empty string.
func (e FieldErrors) Get(field string) string {
	return e[field]
}

// Err returns nil when no field failed, so callers can return it directly.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidationErrorResponse is the JSON body of a 422 response.
type ValidationErrorResponse struct {
	Errors FieldErrors `json:"errors"`
}

// ErrorResponse is the JSON body of other non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
