package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateRequired checks a mandatory text field such as a task text or a
// book title.
func ValidateRequired(field, value string, max int) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}

	return ValidateLength(field, trimmed, max)
}

// ValidateLength bounds an optional text field.
func ValidateLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s is too long (max %d characters)", field, max)
	}
	return nil
}
