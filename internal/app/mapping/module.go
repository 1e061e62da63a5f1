package mapping_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	mapping_service "github.com/init-pkg/wrapped-reports/internal/app/mapping/service"
	mapping_http_handler "github.com/init-pkg/wrapped-reports/internal/app/mapping/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(mapping_service.New, fx.As(new(app.ColumnMapper))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(mapping_http_handler.New),
		fx.Invoke((*mapping_http_handler.MappingHttpHandler).Register),
	)
}
