// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("the given data was invalid")
)

// ValidationError enumerates the offending fields of a request, each with
// one or more human-readable messages. Field keys are the JSON names seen by
// the client.
type ValidationError struct {
	Fields map[string][]string
	order  []string
}

// NewValidationError returns an empty *ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// FieldError is a shorthand for a single-field ValidationError.
func FieldError(field, message string) *ValidationError {
	return NewValidationError().Add(field, message)
}

// Add appends message to field and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	if _, seen := e.Fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// Empty reports whether no field has been recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error returns the first message, followed by the count of the remaining
// ones: "The name field is required. (and 2 more errors)".
func (e *ValidationError) Error() string {
	total := 0
	first := ""
	for _, field := range e.order {
		msgs := e.Fields[field]
		if first == "" && len(msgs) > 0 {
			first = msgs[0]
		}
		total += len(msgs)
	}
	if first == "" {
		return ErrValidation.Error()
	}

	switch rest := total - 1; rest {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
