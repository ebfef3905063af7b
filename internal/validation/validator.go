// Package validation validates use case inputs with go-playground/validator.
// Field names in failures are the JSON names of the input, and messages come
// from a per-input table so that API clients see the same wording the admin
// dashboard displays.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"news-website/internal/domain/entity"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Messages maps "field.tag" to a human readable message. Slice elements use
// "field[].tag", so "keywords[].required" covers every keywords[i].
type Messages map[string]string

// Get returns the singleton validator with the custom tags registered.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
			return entity.ValidateURL(fl.Field().String()) == nil
		})
		_ = validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return entity.IsValidID(fl.Field().String())
		})
		_ = validate.RegisterValidation("pubdate", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseDate(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

var indexSuffix = regexp.MustCompile(`\[\d+\]`)

// Struct validates s and returns entity.ValidationErrors on failure.
func Struct(s any, msgs Messages) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return entity.ValidationErrors{{Field: "body", Message: err.Error()}}
	}

	out := make(entity.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		out = append(out, entity.ValidationError{
			Field:   field,
			Message: message(msgs, field, fe),
		})
	}
	return out
}

// fieldPath drops the root struct name: "CreateInput.keywords[1]" -> "keywords[1]".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(msgs Messages, field string, fe validator.FieldError) string {
	key := indexSuffix.ReplaceAllString(field, "[]") + "." + fe.Tag()
	if m, ok := msgs[key]; ok {
		return m
	}
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "httpurl", "url":
		return field + " must be a valid URL"
	case "objectid":
		return field + " must be a valid id"
	case "pubdate":
		return field + " must be a valid date"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	}
	return field + " is invalid"
}
