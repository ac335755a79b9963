package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest component name, in characters, accepted by
// [ValidateComponentName].
const MaxNameLength = 128

// ValidateComponentName validates a component name for display and lookup.
// Names end up verbatim in diagrams and DOT identifiers, so the rules are:
//   - No empty or whitespace-only names
//   - No control characters (newlines would break one-line-per-link output)
//   - No leading or trailing whitespace
//   - Maximum length of [MaxNameLength] characters
func ValidateComponentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidComponent, "component name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return New(ErrCodeInvalidComponent, "component name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidComponent, "component name contains invalid control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidComponent, "component name %q has surrounding whitespace", name)
	}

	return nil
}

// ValidatePlantPath validates the path of a plant file given on the command line.
func ValidatePlantPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "plant path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "plant path contains invalid characters")
		}
	}

	return nil
}
