// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for partial validation. They are Go field
// names, not json names.
const (
	FieldUsername     = "Username"
	FieldPassword     = "Password"
	FieldDistrictName = "DistrictName"
	FieldStateID      = "StateID"
)

// StructValidator validates structs by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a [Validator] that reports fields by their
// json names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: v}
}

// Validate checks every tagged field of obj, or only fields when given.
//
// A failed rule yields an error wrapping [ErrValidation] whose message lists
// each violation, e.g. "validation failed: districtName is required".
// A value that is not a struct (or pointer to one) yields [ErrUnsupportedType].
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
