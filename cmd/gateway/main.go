package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/config"
	"github.com/e-lobo/herogram-go/internal/gateway"
	"github.com/e-lobo/herogram-go/internal/logging"
	"github.com/e-lobo/herogram-go/internal/services"
)

func main() {

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	auth := services.NewAuthService(api.NewClient(cfg.APIBaseURL, logger))

	g, err := gateway.New(cfg, auth, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("%v", err)
	}
}
