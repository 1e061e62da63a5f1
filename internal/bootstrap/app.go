package bootstrap

import (
	bulk_module "github.com/init-pkg/wrapped-reports/internal/app/bulk"
	ingest_module "github.com/init-pkg/wrapped-reports/internal/app/ingest"
	mapping_module "github.com/init-pkg/wrapped-reports/internal/app/mapping"
	report_module "github.com/init-pkg/wrapped-reports/internal/app/report"
	slideshow_module "github.com/init-pkg/wrapped-reports/internal/app/slideshow"
	theme_module "github.com/init-pkg/wrapped-reports/internal/app/theme"
	"github.com/init-pkg/wrapped-reports/internal/server"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		ingest_module.Register(),
		mapping_module.Register(),
		theme_module.Register(),
		report_module.Register(),
		slideshow_module.Register(),
		bulk_module.Register(),

		fx.Invoke(
			CheckReadiness,
		),
	)
}

func httpOptions() fx.Option {
	return fx.Options(
		fx.Provide(server.New),

		ingest_module.RegisterHttp(),
		mapping_module.RegisterHttp(),
		theme_module.RegisterHttp(),
		report_module.RegisterHttp(),
		slideshow_module.RegisterHttp(),
		bulk_module.RegisterHttp(),

		fx.Invoke(
			server.RegisterDocs,
			server.Start,
		),
	)
}
