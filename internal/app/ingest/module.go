package ingest_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	ingest_service "github.com/init-pkg/wrapped-reports/internal/app/ingest/service"
	ingest_http_handler "github.com/init-pkg/wrapped-reports/internal/app/ingest/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(ingest_service.New, fx.As(new(app.Ingestor))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(ingest_http_handler.New),
		fx.Invoke((*ingest_http_handler.IngestHttpHandler).Register),
	)
}
