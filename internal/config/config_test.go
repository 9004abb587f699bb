package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AppEnv:           "development",
		DBDriver:         "sqlite",
		Timezone:         "UTC",
		ReminderSchedule: "@every 1m",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		err    error
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "no backend", modify: func(c *Config) { c.DBDriver = "none" }},
		{name: "unknown driver", modify: func(c *Config) { c.DBDriver = "mongo" }, err: ErrUnknownDriver},
		{name: "password without secret", modify: func(c *Config) { c.PasswordHash = "$2a$10$x" }, err: ErrMissingSecret},
		{name: "production reminders without resend", modify: func(c *Config) {
			c.AppEnv = "production"
			c.ReminderEmail = "me@example.com"
		}, err: ErrMissingResend},
		{name: "bad schedule", modify: func(c *Config) { c.ReminderSchedule = "every minute" }, err: ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BOOL", "nope")

	assert.Equal(t, 90*time.Second, envDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, envDuration("TEST_MISSING", time.Minute))
	assert.True(t, envBool("TEST_BOOL", true))
	assert.Equal(t, "fallback", envString("TEST_MISSING", "fallback"))
}

func TestSanitizedDropsSecrets(t *testing.T) {
	c := validConfig()
	c.JWTSecret = "secret"
	c.PasswordHash = "hash"
	c.ResendAPIKey = "key"
	c.S3SecretKey = "s3"

	s := c.Sanitized()
	assert.Empty(t, s.JWTSecret)
	assert.Empty(t, s.PasswordHash)
	assert.Empty(t, s.ResendAPIKey)
	assert.Empty(t, s.S3SecretKey)
	assert.Equal(t, c.AppEnv, s.AppEnv)
}

func TestLocation(t *testing.T) {
	c := validConfig()
	c.Timezone = "Europe/Berlin"
	loc := c.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Europe/Berlin", loc.String())
}
