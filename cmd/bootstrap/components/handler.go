package components

import (
	"loginflow/internal/handler"
	"loginflow/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
