package commands

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports one or more field-level problems in a
// transaction-creation submission. All field failures for a single
// submission are collected and returned together, not short-circuited,
// so the caller can display every field error at once. The submitted
// values are echoed back for re-display alongside the errors.
type ValidationError struct {
	// FieldErrors maps a field name ("customer", "date", "hogs") to its message.
	FieldErrors map[string]string

	// Customer, Date and Hogs echo the submitted values back to the caller.
	Customer string
	Date     string
	Hogs     []string
}

// NewValidationError creates a field-level validation failure echoing the
// submitted values.
func NewValidationError(fieldErrors map[string]string, customer, date string, hogs []string) *ValidationError {
	return &ValidationError{
		FieldErrors: fieldErrors,
		Customer:    customer,
		Date:        date,
		Hogs:        hogs,
	}
}

// Error joins the field messages in stable field-name order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.FieldErrors[field]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// MalformedRequestError reports a submission whose shape is fundamentally
// wrong (e.g., the hogs field is not a list, or its entries are not strings).
// It is a single coarse failure, never decomposed into field errors, and
// aborts processing before any field-level checks run.
type MalformedRequestError struct {
	Message string
}

// NewMalformedRequestError creates a shape-level request failure.
func NewMalformedRequestError(message string) *MalformedRequestError {
	return &MalformedRequestError{Message: message}
}

func (e *MalformedRequestError) Error() string {
	return "malformed request: " + e.Message
}
