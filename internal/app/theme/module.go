package theme_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	theme_service "github.com/init-pkg/wrapped-reports/internal/app/theme/service"
	theme_http_handler "github.com/init-pkg/wrapped-reports/internal/app/theme/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(theme_service.New, fx.As(new(app.ThemeService))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(theme_http_handler.New),
		fx.Invoke((*theme_http_handler.ThemeHttpHandler).Register),
	)
}
