// Package server boots the HTTP process: config, database, cache, log sink,
// middleware stack and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/merchstore/merchstore/app/routes"
	"github.com/merchstore/merchstore/config"
	"github.com/merchstore/merchstore/pkg/cache"
	"github.com/merchstore/merchstore/pkg/database"
	"github.com/merchstore/merchstore/pkg/logger"
	"github.com/merchstore/merchstore/pkg/metrics"
	"github.com/merchstore/merchstore/pkg/middleware"
	"github.com/merchstore/merchstore/pkg/reqid"
	"github.com/merchstore/merchstore/pkg/router"
)

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	var logSink *logger.MongoHandler
	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.AttachMongoSink(uri, config.LogMongoDB())
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			logSink = sink
		}
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: database: %w", err)
	}

	// The cache is best-effort; reads fall through to the database.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	r := NewRouter()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	if logSink != nil {
		logSink.Close()
	}
	return nil
}

// NewRouter builds the full middleware stack and mounts every route. Split
// out from Start so tests and the route:list command can build the routing
// table without binding a socket.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.Register(r, database.DB)
	return r
}
