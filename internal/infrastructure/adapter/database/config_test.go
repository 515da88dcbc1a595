package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(*Config) {}, ""},
		{"Missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"Bad port", func(c *Config) { c.Port = 70000 }, "invalid port number"},
		{"Missing user", func(c *Config) { c.Username = "" }, "database username is required"},
		{"Missing name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"Driver", func(c *Config) { c.Driver = "sqlite" }, "unsupported database driver"},
		{"SSL mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"Pool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"Retries", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
		{"Log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := TestConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSNAndString(t *testing.T) {
	cfg := TestConfig()

	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=payment_gateway_test sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://postgres@localhost:5432/payment_gateway_test", cfg.String())
	assert.NotContains(t, cfg.String(), "password")
}
