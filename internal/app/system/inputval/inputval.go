// Package inputval validates request input structs using validator tags.
//
// Fields carry `validate` rules and an optional `label` tag used in the
// message shown to the user:
//
//	type updateOrgInput struct {
//	    Name  string `validate:"required,max=200" label:"Organization name"`
//	    Email string `validate:"omitempty,email" label:"Email"`
//	}
package inputval

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the label tag (falling back to the field name) so messages
	// read "Organization name is required", not "Name is required".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result collects per-field validation messages.
type Result struct {
	Errors []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate checks a struct against its validate tags.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []string{"Invalid input."}}
	}

	var res Result
	for _, fe := range verrs {
		res.Errors = append(res.Errors, message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required."
	case "max":
		return name + " must be at most " + fe.Param() + " characters."
	case "min":
		return name + " must be at least " + fe.Param() + " characters."
	case "email":
		return name + " must be a valid email address."
	case "url":
		return name + " must be a valid URL."
	default:
		return name + " is invalid."
	}
}

// IsValidEmail reports whether s is a plausible email address. Used for
// one-off checks outside struct validation.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return validate.Var(s, "email") == nil
}
