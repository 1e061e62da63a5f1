package slideshow_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
)

type SlideshowHttpHandler struct {
	renderer app.SlideRenderer
	exporter app.SlideExporter
}

func New(renderer app.SlideRenderer, exporter app.SlideExporter) *SlideshowHttpHandler {
	return &SlideshowHttpHandler{renderer, exporter}
}

func (this *SlideshowHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/slides")

	app.Post("/render", this.render)
	app.Post("/export", this.export)
}

// @Summary	Render the navigable slide deck page
// @Tags		slides
// @Accept		json
// @Produce	html
// @Param		request	body	dtos.SlideDeckRequest	true	"deck"
// @Success	200
// @Router		/api/slides/render [post]
func (this *SlideshowHttpHandler) render(fctx fiber.Ctx) error {
	var req dtos.SlideDeckRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	page, err := this.renderer.RenderDeck(req.ToView())
	if err != nil {
		return err
	}

	fctx.Type("html", "utf-8")
	return fctx.SendString(page)
}

// @Summary	Export one slide, or all when index is absent, as PNG
// @Tags		slides
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.ExportSlidesRequest	true	"deck and optional index"
// @Success	200		{object}	dtos.ExportSlidesResponse
// @Failure	500		{object}	server.ErrorResponse
// @Router		/api/slides/export [post]
func (this *SlideshowHttpHandler) export(fctx fiber.Ctx) error {
	var req dtos.ExportSlidesRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	var view = req.ToView()
	if req.Index != nil {
		img, err := this.exporter.ExportCurrent(fctx.Context(), view, *req.Index)
		if err != nil {
			return err
		}
		return fctx.JSON(dtos.NewExportSlidesResponse([]app.SlideImage{*img}))
	}

	images, err := this.exporter.ExportAll(fctx.Context(), view)
	if err != nil {
		return err
	}
	return fctx.JSON(dtos.NewExportSlidesResponse(images))
}
