package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// BCP 47 language tags as they appear in query parameters: "sw", "sw-TZ", "pt-BR"
	validLocalePattern = regexp.MustCompile(`^[a-zA-Z]{2,8}(-[a-zA-Z0-9]{2,8})*$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateLocale validates a requested display locale. Empty locales are
// allowed and mean "use default names".
func ValidateLocale(locale string) error {
	if locale == "" {
		return nil
	}

	if len(locale) > 35 {
		return errors.New("locale too long")
	}

	if !validLocalePattern.MatchString(locale) {
		return errors.New("locale is not a valid language tag")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	return strings.TrimSpace(sanitized)
}
