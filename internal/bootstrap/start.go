package bootstrap

import (
	"context"

	"go.uber.org/fx"
)

// Run starts the HTTP server and blocks until a stop signal.
func Run() {
	app := fx.New(
		coreOptions(),
		clientsOptions(),
		appOptions(),
		httpOptions(),
	)

	app.Run()
}

// Services builds the application graph without the HTTP server, fills
// targets with fx.Populate and returns a stop function.
func Services(ctx context.Context, targets ...any) (func(context.Context) error, error) {
	app := fx.New(
		coreOptions(),
		clientsOptions(),
		appOptions(),
		fx.Populate(targets...),
	)

	if err := app.Start(ctx); err != nil {
		return nil, err
	}
	return app.Stop, nil
}
