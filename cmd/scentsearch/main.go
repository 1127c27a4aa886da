package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/catalog"
	"github.com/velour-cloud/scentsearch/internal/config"
	"github.com/velour-cloud/scentsearch/internal/currency"
	logpkg "github.com/velour-cloud/scentsearch/internal/logger"
	"github.com/velour-cloud/scentsearch/internal/metrics"
	chiTransport "github.com/velour-cloud/scentsearch/internal/transport/chi"
	searchuc "github.com/velour-cloud/scentsearch/internal/usecase/search"
	"github.com/velour-cloud/scentsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting scentsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_base_url", cfg.Catalog.BaseURL),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Build the candidate provider chain — composition root
	providers, closeCache := buildProviders(cfg, logger)
	defer closeCache()

	searchSvc := searchuc.New(providers, providers, currency.FormatPaise).
		WithQueryGating(cfg.Search.MinQueryLen).
		WithSuggestionLimit(cfg.Search.SuggestLimit)

	server := chiTransport.NewServer(searchSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildProviders assembles the catalog chain: remote backend, optional
// shared Redis cache, seed-data fallback. With no backend configured
// the service runs off the seed dataset alone.
func buildProviders(cfg config.Config, logger *zap.Logger) (*catalog.Fallback, func()) {
	standby := catalog.NewStatic()
	closeCache := func() {}

	if cfg.Catalog.BaseURL == "" {
		logger.Info("No catalog backend configured, serving seed dataset")
		return catalog.NewFallback(standby, standby, standby, logger), closeCache
	}

	remote := catalog.NewRemote(
		cfg.Catalog.BaseURL,
		time.Duration(cfg.Catalog.TimeoutSec)*time.Second,
		cfg.Catalog.Retries,
		logger,
	)

	var products catalog.ProductSource = remote
	var entries catalog.EntrySource = remote

	if len(cfg.Cache.Addrs) > 0 {
		client, err := rueidis.NewClient(rueidis.ClientOption{
			InitAddress:  cfg.Cache.Addrs,
			Password:     cfg.Cache.Password,
			DisableCache: true,
		})
		if err != nil {
			logger.Fatal("Failed to create cache client", zap.Error(err))
		}
		closeCache = client.Close

		cache := catalog.NewCache(
			client, remote, remote,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			cfg.Cache.KeyPrefix,
			logger,
		)
		products = cache
		entries = cache
		logger.Info("Catalog cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	return catalog.NewFallback(products, entries, standby, logger), closeCache
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
