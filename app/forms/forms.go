package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// relaxed_email accepts anything shaped like an address. Deliberately
// looser than RFC validation: the backend is the authority, this gate only
// catches obvious typos before a network call is spent.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("relaxed_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// ValidEmail reports whether the address passes the relaxed email rule.
func ValidEmail(addr string) bool {
	return emailRegex.MatchString(addr)
}

// Check validates a form struct and returns a single user-facing message
// for the first failure, or "" when the form is valid. A non-empty result
// means no backend request may be issued.
func Check(form interface{}) string {
	err := validate.Struct(form)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Please check the form and try again."
	}
	return describe(errs[0])
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label(fe.Field()))
	case "relaxed_email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("%s is too short.", label(fe.Field()))
	case "max":
		return fmt.Sprintf("%s is too long.", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid.", label(fe.Field()))
	}
}

// label turns a json field name into a display label: "full_name" -> "Full name".
func label(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
