package validation

import (
	"regexp"
	"strings"

	"weatherhub.app/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateLatitude checks that a latitude is within [-90, 90]
func ValidateLatitude(v float64) error {
	if v < -90 || v > 90 {
		return errors.NewValidationError("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude checks that a longitude is within [-180, 180]
func ValidateLongitude(v float64) error {
	if v < -180 || v > 180 {
		return errors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
