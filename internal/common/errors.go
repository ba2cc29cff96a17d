// Package common defines shared sentinel errors used across the journal's
// storage and state layers. Callers should use errors.Is to match these
// values, and errors.As for ValidationError.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("entry not found")
	ErrDuplicateDate = errors.New("an entry already exists for this date")

	// Date parsing errors.
	ErrInvalidDate = errors.New("invalid date")

	// Storage-level errors. The underlying fault is logged, never attached.
	ErrStorage = errors.New("storage operation failed")
)

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
