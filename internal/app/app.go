package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/cultour-backend/internal/adapter/assetstore"
	"github.com/heartmarshall/cultour-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cultour-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/cultour-backend/internal/auth"
	"github.com/heartmarshall/cultour-backend/internal/config"
	"github.com/heartmarshall/cultour-backend/internal/service/catalog"
	recordsvc "github.com/heartmarshall/cultour-backend/internal/service/record"
	"github.com/heartmarshall/cultour-backend/internal/transport/middleware"
	"github.com/heartmarshall/cultour-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		append([]any{slog.String("version", BuildVersion())}, settingsAttrs(cfg)...)...,
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := assetstore.NewLocalStore(assetstore.Config{
		Root:         cfg.Upload.Dir,
		BaseURL:      cfg.Upload.BaseURL(),
		MaxImageSide: cfg.Upload.MaxImageSide,
	})
	if err != nil {
		return err
	}

	records := record.New(pool)
	recordService := recordsvc.NewService(logger, records, store)
	catalogService := catalog.NewService(logger, records, store, cfg.Catalog.CacheTTL)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Routes{
		Health: rest.NewHealthHandler(pool, store, Version),
		Public: rest.NewPublicHandler(catalogService, logger),
		Admin: rest.NewAdminHandler(recordService, catalogService, rest.UploadLimits{
			MaxBytes:     cfg.Upload.MaxBytes,
			AllowedTypes: cfg.Upload.AllowedTypeList(),
		}, logger),
		Static:       rest.NewStaticHandler(store.Root()),
		StaticPrefix: cfg.Upload.URLPrefix,
		Common:       middleware.Chain(middleware.CORS(cfg.CORS), middleware.Auth(jwtManager)),
		PublicLimit:  limiter.Limit(cfg.RateLimit.PublicPerMinute),
		AdminLimit:   limiter.Limit(cfg.RateLimit.AdminPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
