package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nfl-picks-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "server setup failed", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
