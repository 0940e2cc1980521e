package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vadim/vk-metric/internal/app"
	"github.com/vadim/vk-metric/internal/config"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Cancel the run on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Printf("application error: %v", err)
		stop()
		os.Exit(1)
	}
}
