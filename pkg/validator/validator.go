package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed struct-tag validation.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) String() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: failed %q", e.Field, e.Tag)
	}
	return fmt.Sprintf("%s: failed %q (%s)", e.Field, e.Tag, e.Param)
}

var validate = validator.New()

// ValidateStruct runs the validate tags on data and returns one FieldError
// per violation, or nil when the struct is valid.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Join renders a FieldError slice as a single message for error responses.
func Join(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
