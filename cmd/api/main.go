package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/app"
	"github.com/rangeroper/healthcare-scheduler/internal/audit"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/config"
	"github.com/rangeroper/healthcare-scheduler/internal/logger"
	"github.com/rangeroper/healthcare-scheduler/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := app.OpenStore(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open record store", zap.Error(err))
	}
	defer closeStore()

	clk := clock.System{}
	dispatcher := audit.NewDispatcher(audit.New(store, clk, zl), zl)

	r, err := routes.New(routes.Deps{
		Store:           store,
		Cache:           app.OpenCache(cfg, zl),
		Audit:           dispatcher,
		Clock:           clk,
		Log:             zl,
		CORSOrigins:     cfg.AllowedOrigins(),
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	if err != nil {
		zl.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	dispatcher.Close()
}
