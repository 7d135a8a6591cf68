package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator checks the `validate` struct tags of request models
// (required fields, email format) with go-playground/validator.
//
// Field names passed to Validate are Go struct field names, e.g. "Email" or
// "Instructor.Email"; with no names every tagged field is checked.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{validate: v}
}

func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		for _, f := range fields {
			if !hasField(value.Type(), f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

// hasField resolves a dotted Go field path against t.
func hasField(t reflect.Type, path string) bool {
	for _, name := range strings.Split(path, ".") {
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return false
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return false
		}
		t = f.Type
	}

	return true
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		path := fe.Namespace()
		// drop the struct name prefix
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", path, fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(msgs, "; "))
}
