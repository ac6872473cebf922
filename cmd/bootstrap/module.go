package bootstrap

import (
	"loginflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the login gateway.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// DevAuthModule wires the development auth backend.
var DevAuthModule = fx.Options(
	DevAuthConfigModule,
	LoggerModule,
	components.ClockModule,
	JWTModule,
	components.DevAuthModule,
)
