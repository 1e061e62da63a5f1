package server

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"go.uber.org/fx"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// StructValidator plugs go-playground/validator into fiber binding.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validator.New(validator.WithRequiredStructEnabled())}
}

func (this *StructValidator) Validate(out any) error {
	if err := this.validate.Struct(out); err != nil {
		return errs.Validation(err)
	}
	return nil
}

func New(cfg *config.Config, log *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:         cfg.Http.AppName,
		BodyLimit:       cfg.Http.BodyLimit,
		StructValidator: NewStructValidator(),
		ErrorHandler:    NewErrorHandler(log),
	})
}

// NewErrorHandler renders every handler error as {error, details}.
func NewErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(fctx fiber.Ctx, err error) error {
		var (
			status = fiber.StatusInternalServerError
			body   = ErrorResponse{Error: "Internal server error", Details: err.Error()}
			fErr   *fiber.Error
		)

		if appErr, ok := errs.As(err); ok {
			status = appErr.Status()
			body = ErrorResponse{Error: appErr.Message, Details: appErr.Details}
		} else if errors.As(err, &fErr) {
			status = fErr.Code
			body = ErrorResponse{Error: fErr.Message}
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("request failed", "path", fctx.Path(), "status", status, "error", err)
		} else {
			log.Warn("request rejected", "path", fctx.Path(), "status", status, "error", err)
		}

		return fctx.Status(status).JSON(body)
	}
}

// Start binds the listener on fx start and shuts the app down on stop.
func Start(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Http.Address)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("http server stopped", "error", err)
				}
			}()

			log.Info("http server listening", "address", cfg.Http.Address)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
