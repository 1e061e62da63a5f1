package theme_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
)

type ThemeHttpHandler struct {
	service app.ThemeService
}

func New(service app.ThemeService) *ThemeHttpHandler {
	return &ThemeHttpHandler{service}
}

func (this *ThemeHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/themes")

	app.Get("/", this.list)
	app.Post("/custom", this.custom)
}

// @Summary	List theme presets
// @Tags		themes
// @Produce	json
// @Success	200	{object}	dtos.ThemesResponse
// @Router		/api/themes [get]
func (this *ThemeHttpHandler) list(fctx fiber.Ctx) error {
	return fctx.JSON(dtos.ThemesResponse{
		Themes:  this.service.Presets(),
		Default: this.service.Default().Name,
	})
}

// @Summary	Build a theme from two brand colors
// @Tags		themes
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.CustomThemeRequest	true	"primary and accent colors"
// @Success	200		{object}	app.Theme
// @Failure	400		{object}	server.ErrorResponse
// @Router		/api/themes/custom [post]
func (this *ThemeHttpHandler) custom(fctx fiber.Ctx) error {
	var req dtos.CustomThemeRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	return fctx.JSON(this.service.Custom(req.PrimaryColor, req.AccentColor))
}
