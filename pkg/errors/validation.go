package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field length bounds enforced by element constructors.
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1024
	MaxTechnologyLength  = 255
)

// ValidateRequired checks a mandatory free-text field.
//
// The validation rules:
//   - Not empty or whitespace only
//   - At most max characters (runes, not bytes)
//   - No control characters (a DSL string literal cannot span lines)
func ValidateRequired(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidElement, "%s cannot be empty", field)
	}
	return ValidateOptional(field, value, max)
}

// ValidateOptional checks an optional free-text field. The empty string is valid.
func ValidateOptional(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return New(ErrCodeInvalidElement, "%s too long (%d characters, max %d)", field, n, max)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidElement, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateName validates an element name.
func ValidateName(name string) error {
	return ValidateRequired("name", name, MaxNameLength)
}

// ValidateDescription validates an element or relationship description.
func ValidateDescription(desc string) error {
	return ValidateRequired("description", desc, MaxDescriptionLength)
}

// ValidateTechnology validates an optional technology string.
func ValidateTechnology(tech string) error {
	return ValidateOptional("technology", tech, MaxTechnologyLength)
}
