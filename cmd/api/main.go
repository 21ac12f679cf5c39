package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rivvo/cmd/app"
	"rivvo/internal/config"
	handlers "rivvo/internal/handler"
	"rivvo/internal/middleware"
)

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	logger := newLogger()
	defer logger.Sync()

	// setting up config
	config.LoadEnv(logger)
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()
	db, services, err := app.App(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg, logger)

	handlerChain := middleware.Chain(
		handler.Router(),
		middleware.LoggerMiddleware(logger),
		middleware.CORSMiddleware(cfg.CORSOrigin),
		middleware.AuthMiddleware(services.Auth),
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Starting the server
	go func() {
		logger.Info("Server started", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
