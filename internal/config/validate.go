package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/nzoschke/productivity/internal/validation"
	"github.com/robfig/cron/v3"
)

var (
	ErrUnknownDriver   = errors.New("DB_DRIVER must be sqlite, pgx or none")
	ErrMissingSecret   = errors.New("JWT_SECRET is required when APP_PASSWORD_HASH is set")
	ErrMissingResend   = errors.New("production reminders require RESEND_API_KEY")
	ErrInvalidSchedule = errors.New("invalid REMINDER_SCHEDULE")
)

// Validate checks settings that only make sense together. Development
// allows email to run in log mode.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "pgx", "none":
	default:
		return ErrUnknownDriver
	}

	if c.AuthEnabled() && c.JWTSecret == "" {
		return ErrMissingSecret
	}

	if c.ReminderEmail != "" {
		err := validation.ValidateEmail(c.ReminderEmail)
		if err != nil {
			return fmt.Errorf("REMINDER_EMAIL: %w", err)
		}
		if c.IsProduction() && c.ResendAPIKey == "" {
			return ErrMissingResend
		}
	}

	_, err := cron.ParseStandard(c.ReminderSchedule)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	_, err = time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	return nil
}
