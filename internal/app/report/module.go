package report_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	report_service "github.com/init-pkg/wrapped-reports/internal/app/report/service"
	report_http_handler "github.com/init-pkg/wrapped-reports/internal/app/report/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(report_service.New, fx.As(new(app.ReportGenerator))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(report_http_handler.New),
		fx.Invoke((*report_http_handler.ReportHttpHandler).Register),
	)
}
