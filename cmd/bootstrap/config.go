package bootstrap

import (
	"loginflow/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)

var DevAuthConfigModule = fx.Module("devauth_config",
	fx.Provide(
		LoadDevAuthConfig,
		func(cfg config.DevAuthConfig) config.LogConfig { return cfg.Log },
	),
)

// LoadConfig reads a .env file when present; real environment variables win.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}

func LoadDevAuthConfig() (config.DevAuthConfig, error) {
	_ = godotenv.Load()
	return config.LoadDevAuthConfig()
}
