package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator implements [Validator] with go-playground/validator tags.
// Field names in errors and in the optional field list are the JSON names.
type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] that enforces the `validate`
// struct tags of models.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &structValidator{validate: v}
}

// Validate implements [Validator]. When fields are given only those JSON
// fields are checked.
func (s *structValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) == 0 {
		err = s.validate.StructCtx(ctx, obj)
	} else {
		structFields, mapErr := structFieldNames(value.Type(), fields)
		if mapErr != nil {
			return mapErr
		}
		err = s.validate.StructPartialCtx(ctx, obj, structFields...)
	}

	return describe(err)
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(msgs, "; "))
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

// structFieldNames maps JSON names to the Go field names StructPartial
// expects.
func structFieldNames(t reflect.Type, jsonNames []string) ([]string, error) {
	byJSON := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		byJSON[jsonFieldName(f)] = f.Name
	}

	names := make([]string, 0, len(jsonNames))
	for _, n := range jsonNames {
		goName, ok := byJSON[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, n)
		}
		names = append(names, goName)
	}
	return names, nil
}
