package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ddd/youtube-lookup/internal/config"
	"github.com/ddd/youtube-lookup/internal/handler"
	"github.com/ddd/youtube-lookup/internal/innertube"
	"github.com/ddd/youtube-lookup/internal/service"
	"github.com/ddd/youtube-lookup/internal/youtube"
	"github.com/ddd/youtube-lookup/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	// The API key is the one static credential; refusing to start beats
	// failing every lookup at request time.
	if cfg.YouTube.APIKey == "" {
		logger.Log.Fatal("YouTube API key is not configured (set YOUTUBE_API_KEY)")
	}

	// One outbound client: upstream calls share its connection pool.
	httpClient := &http.Client{Timeout: cfg.YouTube.Timeout}

	ytClient, err := youtube.NewClient(httpClient, cfg.YouTube.APIKey)
	if err != nil {
		logger.Log.Fatal("failed to create YouTube client", zap.Error(err))
	}
	itClient := innertube.NewClient(httpClient)

	resolver := service.NewResolver(ytClient, itClient, itClient)

	router := handler.NewRouter(
		handler.NewChannelHandler(resolver),
		handler.NewListHandler(ytClient),
		"./static",
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}
