// Package validation checks incoming request bodies before they reach
// the core. Field-level problems are collected into a single Error so
// the caller sees every invalid field at once.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
)

// DateFormat is the wire format for all date fields.
const DateFormat = "2006-01-02"

// Error is a field-keyed validation failure. It unwraps to
// apperrors.ErrValidation so handlers can classify it uniformly.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error { return apperrors.ErrValidation }

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidDate reports whether value parses in the wire date format.
func ValidDate(value string) bool {
	_, err := time.Parse(DateFormat, value)
	return err == nil
}
