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

// FieldError describes a single rule violation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param == "" {
		return f.Field + ": " + f.Rule
	}
	return f.Field + ": " + f.Rule + "=" + f.Param
}

// ValidationError lists every violated rule of a request body.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator driven by `validate` struct tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &requestValidator{validate: v}
}

// Validate checks every tagged field of input, or only the named ones when
// fields is not empty. Field names refer to Go struct field names.
func (r *requestValidator) Validate(ctx context.Context, input any, fields ...string) error {
	value := reflect.ValueOf(input)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, input, fields...)
	} else {
		err = r.validate.StructCtx(ctx, input)
	}
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(violations))}
	for _, v := range violations {
		result.Fields = append(result.Fields, FieldError{
			Field: v.Field(),
			Rule:  v.Tag(),
			Param: v.Param(),
		})
	}
	return result
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
