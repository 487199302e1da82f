package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/playstack/video-catalog/internal/assets"
	"github.com/playstack/video-catalog/internal/catalog/auth"
	"github.com/playstack/video-catalog/internal/catalog/httpapi"
	"github.com/playstack/video-catalog/internal/catalog/service"
	"github.com/playstack/video-catalog/internal/config"
	"github.com/playstack/video-catalog/internal/storage/postgres"
)

func run(ctx context.Context, logger zerolog.Logger) error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is empty")
	}

	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	store, err := assets.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		return fmt.Errorf("asset store: %w", err)
	}

	// Dependencies
	outboxRepo := postgres.NewOutboxRepo(db)
	videos := postgres.NewVideoRepo(db, outboxRepo)
	users := postgres.NewUserRepo(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	svc := service.New(videos, users, store, logger)
	h := httpapi.New(svc, users, tokens, cfg.UploadTempDir, logger)
	router := httpapi.NewRouter(h, tokens, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	}
}
