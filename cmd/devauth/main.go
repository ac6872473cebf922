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
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.DevAuthConfig, logger *slog.Logger) {
	logger.Warn("devauth is for local development only; do not expose it")
	bootstrap.ServeHTTP(lc, engine, ":"+cfg.Port, logger)
}

func main() {
	app := fx.New(
		bootstrap.DevAuthModule,
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
		slog.Error("failed to start devauth", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop devauth cleanly", "error", err)
	}

	slog.Info("devauth stopped")
}
