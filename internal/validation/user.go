package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	// bcrypt ignores input past 72 bytes.
	MaxPasswordBytes = 72
)

// ValidatePassword enforces the account password length policy.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordBytes)
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address syntax.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("email must be a valid email address")
	}
	return nil
}
