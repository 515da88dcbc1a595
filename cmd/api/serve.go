package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/port/persistence"
	paymentUseCase "github.com/amirhossein-jamali/payment-gateway/internal/domain/usecase/payment"
	userUseCase "github.com/amirhossein-jamali/payment-gateway/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/api/templates"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/ledger"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/receipt"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/adapter/session"
	"github.com/amirhossein-jamali/payment-gateway/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const sessionPurgeInterval = 10 * time.Minute

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the payment gateway web server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg

	switch cfg.Environment {
	case config.Production:
		gin.SetMode(gin.ReleaseMode)
	case config.Test:
		gin.SetMode(gin.TestMode)
	}

	if cfg.Database.AutoMigrate {
		if err := a.db.MigrationManager().MigrateAll(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Identity store
	userRepo := repository.NewUserRepository(a.db.DB(), a.logger)
	uow := a.db.CreateUnitOfWork(repository.Factory(a.logger))
	hasher := security.NewArgon2Hasher(cfg.Security.Argon2)
	users := userUseCase.NewUserUseCase(userRepo, uow, hasher, a.clock, a.logger)

	// Ledger and payments
	payments := paymentUseCase.NewPaymentService(
		ledger.NewMemoryLedger(a.logger),
		a.clock,
		a.logger,
		paymentUseCase.WithIDAttempts(cfg.Payment.IDAttempts),
	)

	// Sessions
	store, closeStore, err := newSessionStore(ctx, a)
	if err != nil {
		return err
	}
	defer closeStore()

	codec, err := session.NewCookieCodec(cfg.Session.Secret, cfg.Session.TTL, a.clock)
	if err != nil {
		return fmt.Errorf("failed to create session cookie codec: %w", err)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	routes.SetupMiddlewares(router, a.logger, store, codec, middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
	})
	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handler.NewAuthHandler(users, a.logger),
		Payment:  handler.NewPaymentHandler(payments, receipt.NewQRRenderer(), a.logger),
		API:      handler.NewAPIHandler(payments, a.logger),
		Health:   handler.NewHealthHandler(a.db, a.logger),
		Accounts: users,
	}, a.logger)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"session_store": cfg.Session.Store,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for a signal or a listener failure
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	a.logger.Info("Server exited gracefully", nil)
	return nil
}

// newSessionStore builds the configured store and returns its cleanup
func newSessionStore(ctx context.Context, a *app) (persistence.SessionStore, func(), error) {
	cfg := a.cfg.Session

	if cfg.Store == config.SessionStoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}

		closeClient := func() {
			if err := client.Close(); err != nil {
				a.logger.Error("Failed to close redis client", map[string]any{"error": err.Error()})
			}
		}
		return session.NewRedisStore(client, cfg.TTL, a.clock, a.logger), closeClient, nil
	}

	store := session.NewMemoryStore(cfg.TTL, a.clock, a.logger)

	// Expired sessions are dropped lazily on read; the janitor reclaims the rest
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				if removed := store.Purge(); removed > 0 {
					a.logger.Debug("Purged expired sessions", map[string]any{"removed": removed})
				}
			}
		}
	}()

	return store, stopJanitor, nil
}
