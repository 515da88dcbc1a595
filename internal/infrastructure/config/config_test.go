package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 5s
database:
  host: db.internal
  username: paygate
  password: from-file
  name: paygate
logger:
  level: debug
  format: console
session:
  secret: file-secret
  ttl: 30m
security:
  argon2:
    time: 1
    memory: 8192
payment:
  idAttempts: 3
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func validConfig() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			Username:     "paygate",
			Name:         "paygate",
			QueryTimeout: 10 * time.Second,
		},
		Logger:   LoggerConfig{Level: "info"},
		Session:  SessionConfig{Store: SessionStoreMemory, CookieName: "paygate_session", Secret: "s", TTL: time.Hour},
		Security: SecurityConfig{Argon2: security.DefaultArgon2Params()},
		Payment:  PaymentConfig{IDAttempts: 5},
	}
}

func TestLoadConfigFrom(t *testing.T) {
	dir := writeConfig(t, "test", testYAML)

	cfg, err := LoadConfigFrom("test", dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)

	// File values
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, uint32(1), cfg.Security.Argon2.Time)
	assert.Equal(t, uint32(8192), cfg.Security.Argon2.Memory)
	assert.Equal(t, 3, cfg.Payment.IDAttempts)
	assert.False(t, cfg.Logger.IsJSON())

	// Defaults
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, "paygate_session", cfg.Session.CookieName)
	assert.Equal(t, uint8(2), cfg.Security.Argon2.Threads)
	assert.Equal(t, uint32(32), cfg.Security.Argon2.KeyLength)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "test", testYAML)
	t.Setenv("PAYGATE_DB_PASSWORD", "from-env")
	t.Setenv("PAYGATE_DB_PORT", "6543")
	t.Setenv("PAYGATE_SESSION_SECRET", "env-secret")
	t.Setenv("PAYGATE_SESSION_TTL", "2h")
	t.Setenv("PAYGATE_SESSION_STORE", "redis")
	t.Setenv("PAYGATE_REDIS_ADDR", "redis:6379")

	cfg, err := LoadConfigFrom("test", dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, "redis:6379", cfg.Session.Redis.Addr)
}

func TestLoadConfigFrom_EnvironmentVariable(t *testing.T) {
	dir := writeConfig(t, "production", testYAML)
	t.Setenv("PAYGATE_ENV", "Production")

	cfg, err := LoadConfigFrom("", dir)
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Environment)
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	_, err := LoadConfigFrom("staging", t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("Lists every missing key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Host = ""
		cfg.Session.Secret = ""
		cfg.Server.Port = 0

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "database.host")
		assert.Contains(t, err.Error(), "session.secret")
	})

	t.Run("Redis store needs an address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Store = SessionStoreRedis

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.redis.addr")
	})

	t.Run("Unknown store", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Store = "memcached"

		assert.ErrorContains(t, cfg.Validate(), "invalid session store")
	})

	t.Run("Unknown environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "staging"

		assert.ErrorContains(t, cfg.Validate(), "invalid environment value")
	})

	t.Run("ID attempts", func(t *testing.T) {
		cfg := validConfig()
		cfg.Payment.IDAttempts = 0

		assert.ErrorContains(t, cfg.Validate(), "payment.idAttempts")
	})

	t.Run("Argon2 parameters", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.Argon2.Time = 0
		cfg.Security.Argon2.Threads = 0

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, "argon2 parameters must be at least 1: [security.argon2.threads security.argon2.time]", err.Error())
	})

	t.Run("Loaded defaults fill unset argon2 parameters", func(t *testing.T) {
		cfg, err := LoadConfigFrom("test", writeConfig(t, "test", testYAML))

		require.NoError(t, err)
		assert.Equal(t, uint8(2), cfg.Security.Argon2.Threads)
		assert.NoError(t, cfg.Validate())
	})
}

func TestWarnings(t *testing.T) {
	cfg := validConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.Environment = Production
	warnings := cfg.Warnings()
	assert.Len(t, warnings, 3)

	cfg.Database.SSLMode = "verify-full"
	cfg.Session.Secure = true
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	assert.Empty(t, cfg.Warnings())
}

func TestDatabaseSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"
	cfg.Database.RetryAttempts = 2
	cfg.Logger.Level = "warn"

	db := cfg.DatabaseSettings()

	assert.Equal(t, "paygate", db.Database)
	assert.Equal(t, 5432, db.Port)
	assert.Equal(t, 2, db.RetryAttempts)
	assert.Equal(t, "warn", db.LogLevel)
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: 8080}.Addr())
}
