package bootstrap

import (
	"loginflow/internal/devauth"
	"loginflow/internal/handler/middleware"
	"loginflow/internal/pkg/clock"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/jwt"

	"go.uber.org/fx"
)

const tokenIssuer = "loginflow-devauth"

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTIssuer,
			fx.As(fx.Self()),
			fx.As(new(devauth.TokenIssuer)),
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTIssuer(cfg config.DevAuthConfig, clk clock.Clock) *jwt.Issuer {
	return jwt.NewIssuer(cfg.JWTSecret, tokenIssuer, cfg.AccessTTL, cfg.RefreshTTL, clk)
}
