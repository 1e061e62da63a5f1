package bulk_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	bulk_service "github.com/init-pkg/wrapped-reports/internal/app/bulk/service"
	bulk_store "github.com/init-pkg/wrapped-reports/internal/app/bulk/store"
	bulk_http_handler "github.com/init-pkg/wrapped-reports/internal/app/bulk/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		bulk_store.New,
		fx.Annotate(bulk_service.New, fx.As(new(app.BulkOrchestrator))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(bulk_http_handler.New),
		fx.Invoke((*bulk_http_handler.BulkHttpHandler).Register),
	)
}
