package components

import (
	"loginflow/internal/domain/redirect"
	"loginflow/internal/pkg/clock"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/metrics"
	"loginflow/internal/usecase"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var UseCaseModule = fx.Module("usecase",
	ClockModule,
	fx.Provide(
		NewRedirectGuard,
		NewLoginSettings,
		func(m *metrics.Metrics) usecase.SubmissionRecorder { return m },
		usecase.NewLoginUseCase,
	),
)

func NewRedirectGuard(cfg config.Config) *redirect.Guard {
	return redirect.NewGuard(cfg.Redirect.AllowList)
}

func NewLoginSettings(cfg config.Config) usecase.LoginSettings {
	return usecase.LoginSettings{
		DefaultRedirect:  cfg.Redirect.Default,
		ValidateOnChange: cfg.Form.ValidateOnChange,
		ValidateOnBlur:   cfg.Form.ValidateOnBlur,
	}
}
