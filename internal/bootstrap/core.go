package bootstrap

import (
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/init-pkg/wrapped-reports/internal/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.MustLoad,
			logger.New,
			logger.NewSlog,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return logger.NewFxLogger(l)
		}),
	)
}
