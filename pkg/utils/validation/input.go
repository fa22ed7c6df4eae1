package validation

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var fieldMessages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"min":      "Value is below the allowed minimum.",
	"max":      "Value is above the allowed maximum.",
	"oneof":    "Value is not one of the allowed choices.",
}

// ValidateStruct runs validator tags over an input struct and collapses the
// failures into a field -> message map, keyed by the json field name.
func ValidateStruct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["non_field_errors"] = err.Error()
		return fieldErrors
	}
	for _, fe := range validationErrors {
		msg, known := fieldMessages[fe.Tag()]
		if !known {
			msg = "Invalid value."
		}
		fieldErrors[jsonFieldName(fe)] = msg
	}
	return fieldErrors
}

func jsonFieldName(fe validator.FieldError) string {
	// StructNamespace is Input.FieldName; snake-case the leaf.
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + 32)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPrice checks a nightly price the way a decimal(10,2) column would:
// non-negative, at most ten integer digits, at most two decimal places.
func ValidPrice(price float64) bool {
	if price < 0 {
		return false
	}
	if price >= 1e10 {
		return false
	}
	// A third decimal digit leaves at least a tenth of a cent, so the
	// tolerance only needs to absorb float64 representation error near the
	// upper bound of the column.
	cents := price * 100
	return math.Abs(cents-math.Round(cents)) < 1e-3
}

// Blank reports whether a string is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
