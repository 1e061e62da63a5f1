package report_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
	report_service "github.com/init-pkg/wrapped-reports/internal/app/report/service"
)

type ReportHttpHandler struct {
	service app.ReportGenerator
}

func New(service app.ReportGenerator) *ReportHttpHandler {
	return &ReportHttpHandler{service}
}

func (this *ReportHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Post("/api/generate-report", this.generate)
	mainApp.Get("/api/schema/slides", this.slidesSchema)
}

// @Summary	Generate the wrapped slides of one customer
// @Tags		reports
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.GenerateReportRequest	true	"customer, business and theme"
// @Success	200		{object}	app.ReportResult
// @Failure	400		{object}	server.ErrorResponse
// @Failure	500		{object}	server.ErrorResponse
// @Router		/api/generate-report [post]
func (this *ReportHttpHandler) generate(fctx fiber.Ctx) error {
	var req dtos.GenerateReportRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	res, err := this.service.Generate(fctx.Context(), req.ToReportRequest())
	if err != nil {
		return err
	}
	return fctx.JSON(res)
}

// @Summary	JSON schema of the slide list
// @Tags		reports
// @Produce	json
// @Success	200
// @Router		/api/schema/slides [get]
func (this *ReportHttpHandler) slidesSchema(fctx fiber.Ctx) error {
	return fctx.JSON(report_service.SlidesSchema())
}
