package validation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrWeakPassword = errors.New("weak password")

const (
	minPasswordLen = 12
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

var commonPasswordParts = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
	"productivity",
}

// ValidatePassword checks the owner password before it is hashed.
func ValidatePassword(password string) error {
	if len([]rune(password)) < minPasswordLen {
		return fmt.Errorf("%w: use at least %d characters", ErrWeakPassword, minPasswordLen)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: must not exceed %d bytes", ErrWeakPassword, maxPasswordBytes)
	}

	lower := strings.ToLower(password)
	for _, part := range commonPasswordParts {
		if strings.Contains(lower, part) {
			return fmt.Errorf("%w: contains %q", ErrWeakPassword, part)
		}
	}
	return nil
}
