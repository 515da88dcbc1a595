package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	dialector    gorm.Dialector
	logger       coreport.Logger
	migrationMgr *migration.MigrationManager
	timeProvider coreport.TimeProvider
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithDialector replaces the dialector built from the DSN
func WithDialector(dialector gorm.Dialector) ManagerOption {
	return func(m *Manager) {
		m.dialector = dialector
	}
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...ManagerOption) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the database, retrying up to RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"target": m.config.String(),
	})

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			if sleepErr := m.sleep(ctx, m.config.RetryDelay); sleepErr != nil {
				return nil, sleepErr
			}
		}

		gormDB, err = m.open()
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"target":         m.config.String(),
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	return m.db, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	dialector := m.dialector
	if dialector == nil {
		if m.config.Driver != "postgres" {
			return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
		}
		dialector = postgres.Open(m.config.DSN())
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt: m.dialector == nil,
	})
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) error {
	waitCtx, cancel := m.timeProvider.WithTimeout(ctx, coreport.Duration(d))
	defer cancel()

	<-waitCtx.Done()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks the connection is alive within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork(userRepoFor UserRepositoryFactory) persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, userRepoFor)
}

// MigrationManager returns the migration manager, nil before Connect
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
