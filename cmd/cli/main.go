package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/e-lobo/herogram-go/internal/cli"
	"github.com/e-lobo/herogram-go/internal/config"
	"github.com/e-lobo/herogram-go/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
