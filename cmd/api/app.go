package main

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/payment-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/config"
)

// app holds what every subcommand needs: configuration, logging, the clock
// and a connected database
type app struct {
	cfg    *config.Config
	logger coreport.Logger
	clock  coreport.TimeProvider
	db     *database.Manager
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(envFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.IsJSON(), coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	for _, warning := range cfg.Warnings() {
		appLogger.Warn("Unsafe production setting", map[string]any{"warning": warning})
	}

	clock := timeProvider.NewRealTimeProvider(nil)

	dbConfig := cfg.DatabaseSettings()
	if err := dbConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dbManager := database.NewManager(dbConfig, appLogger, clock)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: appLogger,
		clock:  clock,
		db:     dbManager,
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}
