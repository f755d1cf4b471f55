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

type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] driven by `validate` struct tags.
// Field names in errors and in the optional field scope are the JSON names of
// the struct fields.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &structValidator{validate: v}
}

// Validate implements [Validator]. value must be a struct or a pointer to one.
// When fields are given only those fields are checked.
//
// Every rule violation is reported as [ErrInvalidInput] wrapped with the
// offending fields and rules, e.g. "invalid input: email (email), password (min)".
func (s *structValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if !isStruct(value) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) == 0 {
		err = s.validate.StructCtx(ctx, value)
	} else {
		if err = checkFields(value, fields); err != nil {
			return err
		}
		err = s.validate.StructPartialCtx(ctx, value, structFieldNames(value, fields)...)
	}

	return describe(err)
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, ", "))
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func structType(value any) reflect.Type {
	t := reflect.TypeOf(value)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func isStruct(value any) bool {
	t := structType(value)
	return t != nil && t.Kind() == reflect.Struct
}

// structFieldNames translates JSON field names into the Go field names
// StructPartial expects.
func structFieldNames(value any, fields []string) []string {
	t := structType(value)
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		for i := range t.NumField() {
			if jsonFieldName(t.Field(i)) == field {
				names = append(names, t.Field(i).Name)
				break
			}
		}
	}
	return names
}

func checkFields(value any, fields []string) error {
	t := structType(value)
	known := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		known[jsonFieldName(t.Field(i))] = struct{}{}
	}

	for _, field := range fields {
		if _, ok := known[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
