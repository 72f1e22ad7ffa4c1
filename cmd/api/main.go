package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fruitstand/backend/config"
	"github.com/fruitstand/backend/internal/logger"
	"github.com/fruitstand/backend/internal/server"
	"github.com/fruitstand/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogEncoding)
	defer zlog.Sync()

	st, err := store.Open(cfg)
	if err != nil {
		zlog.Fatal("Failed to open recipe store", zap.Error(err))
	}
	defer st.Close()

	srv := server.New(cfg, st, zlog)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerHost + ":" + cfg.ServerPort)
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("Server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("Received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server shutdown error", zap.Error(err))
	}
	zlog.Info("Server stopped")
}
