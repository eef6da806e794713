package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"suppai-backend/internal/bootstrap"
	"suppai-backend/internal/shared/config"
	"suppai-backend/internal/shared/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Log.Sync()

	srv := &http.Server{
		Addr:    server.Addr(cfg.Port),
		Handler: app.Router,
	}

	errChan := make(chan error, 1)
	go func() {
		app.Log.Info("starting API server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			app.Log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		app.Log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		app.Log.Error("shutdown error", zap.Error(err))
	}
}
