package main

import (
	"context"
	"log/slog"
	"os"

	"loginflow/cmd/bootstrap"
	"loginflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug routes by accident; GIN_MODE opts in.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           loginflow gateway
// @version         1.0
// @description     Validates login forms, authenticates against the auth backend and guards redirects.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	bootstrap.ServeHTTP(lc, engine, ":"+cfg.Server.Port, logger)
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start gateway", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop gateway cleanly", "error", err)
	}

	slog.Info("gateway stopped")
}
