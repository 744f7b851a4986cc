// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates request models by their `validate` tags and
// reports failures as *ValidationError keyed by JSON field name.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the
// Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// passwords are hashed with bcrypt, which refuses input over 72 bytes
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &StructValidator{validate: v}
}

// maxBytes limits the encoded length of a string, where max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil || fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := NewValidationError()
	for _, fe := range fieldErrs {
		key, msg := translate(fe)
		if len(fields) > 0 && !slices.Contains(fields, key) {
			continue
		}
		result.Add(key, msg)
	}
	if result.Empty() {
		return nil
	}

	return result
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return toSnake(f.Name)
	}
	return name
}

// translate turns a single tag failure into the client-facing field key and
// message.
func translate(fe validator.FieldError) (string, string) {
	key := fe.Field()
	attr := strings.ReplaceAll(key, "_", " ")

	switch fe.Tag() {
	case "required":
		return key, fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return key, fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "max":
		if fe.Kind() == reflect.String {
			return key, fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
		}
		return key, fmt.Sprintf("The %s field must not be greater than %s.", attr, fe.Param())
	case "maxbytes":
		return key, fmt.Sprintf("The %s field must not be greater than %s bytes.", attr, fe.Param())
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			// a present but empty value of a field that cannot be blank
			return key, fmt.Sprintf("The %s field is required.", attr)
		}
		if fe.Kind() == reflect.String {
			return key, fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
		}
		return key, fmt.Sprintf("The %s field must be at least %s.", attr, fe.Param())
	case "gt":
		return key, fmt.Sprintf("The %s field must be greater than %s.", attr, fe.Param())
	case "eqfield":
		// reported on the confirmed field, not on the confirmation
		confirmed := toSnake(fe.Param())
		return confirmed, fmt.Sprintf("The %s field confirmation does not match.", strings.ReplaceAll(confirmed, "_", " "))
	default:
		return key, fmt.Sprintf("The %s field is invalid.", attr)
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
