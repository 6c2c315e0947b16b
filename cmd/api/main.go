package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vidseo/publish-ms-go/internal/cache"
	"github.com/vidseo/publish-ms-go/internal/config"
	"github.com/vidseo/publish-ms-go/internal/fetcher"
	"github.com/vidseo/publish-ms-go/internal/handler/api"
	"github.com/vidseo/publish-ms-go/internal/logger"
	"github.com/vidseo/publish-ms-go/internal/metadata"
	cMiddleware "github.com/vidseo/publish-ms-go/internal/middleware"
	"github.com/vidseo/publish-ms-go/internal/platform/youtube"
	"github.com/vidseo/publish-ms-go/internal/port"
	"github.com/vidseo/publish-ms-go/internal/usecase/upload"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	r := initRouter(ctx, cfg.JWTPublicKey)

	publisher := initPublisher(ctx, cfg)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — metadata caching is disabled")
	}

	generator := metadata.NewCachedGenerator(metadata.NewGenerator(), ca)
	uploaderSvc := upload.NewVideoUploader(fetcher.NewHTTPFetcher(), generator, publisher)
	r.Post("/videos/upload", api.UploadVideoHandler(uploaderSvc))

	listenRouter(ctx, r, cfg)
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initPublisher(ctx context.Context, cfg *config.Settings) port.Publisher {
	logger.Info(ctx, "initialising YouTube publisher...")

	publisher, err := youtube.NewPublisher(ctx, cfg.YouTubeCredentials)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise YouTube publisher: %v", err)
		os.Exit(1)
	}

	return publisher
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
