package components

import (
	"log/slog"

	"loginflow/internal/devauth"
	"loginflow/internal/handler"
	"loginflow/internal/handler/middleware"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/password"

	"go.uber.org/fx"
)

var DevAuthModule = fx.Module("devauth",
	fx.Provide(
		NewUserStore,
		NewThrottle,
		NewDevAuthService,
		devauth.NewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewDevAuthRouter),
)

func NewUserStore(cfg config.DevAuthConfig, logger *slog.Logger) (*devauth.Store, error) {
	store, err := devauth.LoadStore(cfg.UsersFile, password.DefaultCost)
	if err != nil {
		return nil, err
	}
	logger.Info("devauth users loaded", "count", store.Len(), "file", cfg.UsersFile)
	return store, nil
}

func NewThrottle(cfg config.DevAuthConfig) *devauth.Throttle {
	return devauth.NewThrottle(devauth.ThrottleConfig{
		MaxFailures:   cfg.MaxFailures,
		FailureWindow: cfg.FailureWindow,
		MaxRequests:   cfg.MaxRequestsPerIP,
		RequestWindow: cfg.RequestWindow,
	})
}

func NewDevAuthService(cfg config.DevAuthConfig, store *devauth.Store, throttle *devauth.Throttle, issuer devauth.TokenIssuer, logger *slog.Logger) *devauth.Service {
	return devauth.NewService(store, throttle, issuer, cfg.RememberMeTTL, logger)
}
