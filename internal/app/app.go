package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smartonix/inventory-backend/internal/adapter/extractor"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres"
	itempg "github.com/smartonix/inventory-backend/internal/adapter/postgres/item"
	profilepg "github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/auth"
	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/service/analysis"
	"github.com/smartonix/inventory-backend/internal/service/inventory"
	profilesvc "github.com/smartonix/inventory-backend/internal/service/profile"
	"github.com/smartonix/inventory-backend/internal/service/report"
	"github.com/smartonix/inventory-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires services and the HTTP router, and
// serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	itemRepo := itempg.New(pool)
	profileRepo := profilepg.New(pool)

	gateway := extractor.New(cfg.Extractor)
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	inventorySvc := inventory.New(itemRepo, logger)
	analysisSvc := analysis.New(gateway, itemRepo, txManager, cfg.Analysis, logger)
	profileSvc := profilesvc.New(profileRepo, logger)
	reportSvc := report.New(itemRepo)

	router := rest.NewRouter(rest.Deps{
		Inventory: inventorySvc,
		Analysis:  analysisSvc,
		Profile:   profileSvc,
		Report:    reportSvc,
		Verifier:  verifier,
		DB:        pool,
		Version:   BuildVersion(),
		Logger:    logger,
	}, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
