package slideshow_module

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	slideshow_service "github.com/init-pkg/wrapped-reports/internal/app/slideshow/service"
	slideshow_http_handler "github.com/init-pkg/wrapped-reports/internal/app/slideshow/transports/http"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(slideshow_service.NewRenderer, fx.As(new(app.SlideRenderer))),
		fx.Annotate(slideshow_service.NewExporter, fx.As(new(app.SlideExporter))),
	)
}

func RegisterHttp() fx.Option {
	return fx.Options(
		fx.Provide(slideshow_http_handler.New),
		fx.Invoke((*slideshow_http_handler.SlideshowHttpHandler).Register),
	)
}
