package auth

import (
	"fmt"
	"regexp"
	"unicode"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 8
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError carries the first field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateUsername(username string) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must be between %d and %d characters", usernameMinLen, usernameMaxLen),
		}
	}
	if !usernameRegex.MatchString(username) {
		return &ValidationError{
			Field:   "username",
			Message: "only letters, numbers and underscores allowed",
		}
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < passwordMinLen {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", passwordMinLen),
		}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return &ValidationError{
			Field:   "password",
			Message: "must contain an uppercase letter, a lowercase letter and a digit",
		}
	}
	return nil
}
