package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/greenlink/internal/app"
	"github.com/aidar/greenlink/internal/config"
)

// shutdownTimeout ограничивает время на завершение активных запросов
const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("GreenLink backend stopped with error", "error", err)
		os.Exit(1)
	}
}

// run загружает конфигурацию, запускает сервер и ждет SIGINT/SIGTERM
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// app.New устанавливает JSON логгер по умолчанию
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	logger := slog.Default().With("storage", cfg.Storage.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Initialize(ctx); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	logger.Info("GreenLink backend started",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"cors_origin", cfg.Server.CORSAllowedOrigin,
	)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
