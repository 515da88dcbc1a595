package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/security"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Session     SessionConfig  `mapstructure:"session"`
	Security    SecurityConfig `mapstructure:"security"`
	Payment     PaymentConfig  `mapstructure:"payment"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// IsJSON reports whether logs are written as JSON
func (l LoggerConfig) IsJSON() bool {
	return strings.EqualFold(l.Format, "json")
}

// SessionConfig contains browser session settings
type SessionConfig struct {
	Store      string        `mapstructure:"store"`
	CookieName string        `mapstructure:"cookieName"`
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
	Redis      RedisConfig   `mapstructure:"redis"`
}

// RedisConfig contains the redis session store connection
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SecurityConfig contains password hashing settings
type SecurityConfig struct {
	Argon2 security.Argon2Params `mapstructure:"argon2"`
}

// PaymentConfig contains payment processing settings
type PaymentConfig struct {
	// IDAttempts bounds how many fresh transaction IDs are tried after a collision
	IDAttempts int `mapstructure:"idAttempts"`
}

// DatabaseSettings converts the database section for the database manager
func (c *Config) DatabaseSettings() *database.Config {
	return &database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Name,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		LogLevel:        c.Logger.Level,
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
		AutoMigrate:     c.Database.AutoMigrate,
	}
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missingConfigs []string

	// Server configuration
	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Database configuration
	if c.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PAYGATE_DB_HOST)")
	}
	if c.Database.Port == 0 {
		missingConfigs = append(missingConfigs, "database.port")
	}
	if c.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PAYGATE_DB_USERNAME)")
	}
	if c.Database.Name == "" {
		missingConfigs = append(missingConfigs, "database.name (or PAYGATE_DB_NAME)")
	}
	if c.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Session configuration
	if c.Session.CookieName == "" {
		missingConfigs = append(missingConfigs, "session.cookieName")
	}
	if c.Session.Secret == "" {
		missingConfigs = append(missingConfigs, "session.secret (or PAYGATE_SESSION_SECRET)")
	}
	if c.Session.TTL == 0 {
		missingConfigs = append(missingConfigs, "session.ttl")
	}
	if c.Session.Store == SessionStoreRedis && c.Session.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "session.redis.addr (or PAYGATE_REDIS_ADDR)")
	}

	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Enumerated values
	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("invalid session store: %s, must be %s or %s",
			c.Session.Store, SessionStoreMemory, SessionStoreRedis)
	}
	if c.Payment.IDAttempts < 1 {
		return fmt.Errorf("payment.idAttempts must be at least 1, got %d", c.Payment.IDAttempts)
	}

	// Zero time or threads makes argon2 panic at the first signup
	argon := c.Security.Argon2
	var invalidArgon []string
	for name, value := range map[string]uint32{
		"time":       argon.Time,
		"memory":     argon.Memory,
		"threads":    uint32(argon.Threads),
		"keyLength":  argon.KeyLength,
		"saltLength": argon.SaltLength,
	} {
		if value < 1 {
			invalidArgon = append(invalidArgon, "security.argon2."+name)
		}
	}
	if len(invalidArgon) > 0 {
		sort.Strings(invalidArgon)
		return fmt.Errorf("argon2 parameters must be at least 1: %v", invalidArgon)
	}

	return nil
}

// Warnings lists settings that are legal but unsafe in production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string

	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if !c.Session.Secure {
		warnings = append(warnings, "session.secure should be enabled in production")
	}
	if len(c.Session.Secret) < 32 {
		warnings = append(warnings, "session.secret should be at least 32 characters in production")
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	return warnings
}
