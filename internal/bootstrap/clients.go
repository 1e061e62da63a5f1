package bootstrap

import (
	"github.com/init-pkg/wrapped-reports/domain/app"
	amqp_client "github.com/init-pkg/wrapped-reports/internal/clients/amqp"
	browser_client "github.com/init-pkg/wrapped-reports/internal/clients/browser"
	openai_client "github.com/init-pkg/wrapped-reports/internal/clients/openai"
	redis_client "github.com/init-pkg/wrapped-reports/internal/clients/redis"
	website_client "github.com/init-pkg/wrapped-reports/internal/clients/website"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(openai_client.New, fx.As(new(app.LanguageModel))),
			fx.Annotate(website_client.New, fx.As(new(app.WebsiteFetcher))),
			fx.Annotate(browser_client.New, fx.As(new(app.Rasterizer))),
			redis_client.New,
			amqp_client.New,
		),
	)
}
