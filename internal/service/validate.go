package service

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// trimRequired trims value and validates it is non-empty and at most max
// characters. Lengths are counted in runes, matching the character limits
// exposed to the UI.
func trimRequired(value, field string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Message: fmt.Sprintf("%s cannot be empty", field)}
	}
	if utf8.RuneCountInString(trimmed) > max {
		return "", &ValidationError{Message: fmt.Sprintf("%s must be at most %d characters", field, max)}
	}
	return trimmed, nil
}

// normalizeOptional trims an optional field and converts blank values to nil,
// so empty strings never reach the store. A nil input stays nil.
func normalizeOptional(value *string, field string, max int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > max {
		return nil, &ValidationError{Message: fmt.Sprintf("%s must be at most %d characters", field, max)}
	}
	return &trimmed, nil
}
