package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

// ValidateEmail checks a reminder recipient. Only a bare address is
// accepted; display-name forms like "Me <me@example.com>" are rejected.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidEmail)
	}

	// RFC 5321 path limit
	if len(email) > 254 {
		return fmt.Errorf("%w: longer than 254 characters", ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
