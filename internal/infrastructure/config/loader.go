package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PAYGATE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for env from the default search paths.
// An empty env falls back to PAYGATE_ENV, then development.
func LoadConfig(env string) (*Config, error) {
	return LoadConfigFrom(env, ConfigPaths...)
}

// LoadConfigFrom loads <env>.yaml from the first of paths that has it,
// then applies .env and PAYGATE_* overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	// Load environment variables from .env file first
	loadDotEnvFile()

	if env == "" {
		env = getEnvironment()
	}
	env = strings.ToLower(env)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override the config file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Values already present
// in the environment win.
func loadDotEnvFile() bool {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return true
		}
	}
	return false
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.readHeaderTimeout", 10*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5*time.Minute)
	v.SetDefault("database.connMaxIdleTime", 5*time.Minute)
	v.SetDefault("database.queryTimeout", 10*time.Second)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2*time.Second)
	v.SetDefault("database.autoMigrate", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.cookieName", "paygate_session")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.redis.addr", "")
	v.SetDefault("session.redis.password", "")
	v.SetDefault("session.redis.db", 0)

	v.SetDefault("security.argon2.time", 3)
	v.SetDefault("security.argon2.memory", 64*1024)
	v.SetDefault("security.argon2.threads", 2)
	v.SetDefault("security.argon2.keyLength", 32)
	v.SetDefault("security.argon2.saltLength", 16)

	v.SetDefault("payment.idAttempts", 5)
}

// getEnvironment determines the environment from PAYGATE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short, conventional variable names onto config keys
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_HOST":        "database.host",
		"DB_USERNAME":    "database.username",
		"DB_PASSWORD":    "database.password",
		"DB_NAME":        "database.name",
		"DB_SSL_MODE":    "database.sslMode",
		"SESSION_SECRET": "session.secret",
		"SESSION_STORE":  "session.store",
		"REDIS_ADDR":     "session.redis.addr",
		"REDIS_PASSWORD": "session.redis.password",
		"SERVER_HOST":    "server.host",
		"LOG_LEVEL":      "logger.level",
	}
	for name, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + name); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_PORT":           "database.port",
		"DB_MAX_OPEN_CONNS": "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS": "database.maxIdleConns",
		"REDIS_DB":          "session.redis.db",
		"SERVER_PORT":       "server.port",
	}
	for name, key := range intOverrides {
		if value := getEnvInt(EnvPrefix+"_"+name, -1); value >= 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
