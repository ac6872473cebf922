package components

import (
	"log/slog"

	"loginflow/internal/infra/authclient"
	"loginflow/internal/pkg/config"
	"loginflow/internal/usecase/loginform"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewAuthClient,
			fx.As(new(loginform.Authenticator)),
		),
	),
)

func NewAuthClient(cfg config.Config, logger *slog.Logger) (*authclient.Client, error) {
	return authclient.New(authclient.Config{
		BaseURL: cfg.Auth.BaseURL,
		Timeout: cfg.Auth.Timeout,
		Logger:  logger,
	})
}
