package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB returns a GORM handle backed by sqlmock.
// Unmet expectations fail the test at cleanup.
func NewMockDB(t *testing.T, logger coreport.Logger) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: NewDatabaseLogger(logger, nil, "silent"),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm over sqlmock: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet sql expectations: %v", err)
		}
		_ = sqlDB.Close()
	})

	return db, mock
}

// TestConfig returns a valid configuration that fails fast
func TestConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "postgres"
	cfg.Password = "postgres"
	cfg.Database = "payment_gateway_test"
	cfg.LogLevel = "silent"
	cfg.RetryAttempts = 1
	cfg.RetryDelay = 10 * time.Millisecond
	return cfg
}
