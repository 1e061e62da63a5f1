package bulk_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
)

type BulkHttpHandler struct {
	service app.BulkOrchestrator
}

func New(service app.BulkOrchestrator) *BulkHttpHandler {
	return &BulkHttpHandler{service}
}

func (this *BulkHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/bulk")

	app.Post("/", this.start)
	app.Get("/:id", this.job)
}

// @Summary	Start generating reports for every row
// @Tags		bulk
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.BulkRequest	true	"rows, mappings, business and theme"
// @Success	202		{object}	dtos.BulkStartedResponse
// @Failure	400		{object}	server.ErrorResponse
// @Router		/api/bulk [post]
func (this *BulkHttpHandler) start(fctx fiber.Ctx) error {
	var req dtos.BulkRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	job, err := this.service.Start(fctx.Context(), req.ToBulkInput())
	if err != nil {
		return err
	}
	return fctx.Status(fiber.StatusAccepted).JSON(dtos.BulkStartedResponse{JobId: job.ID})
}

// @Summary	Bulk job status and results
// @Tags		bulk
// @Produce	json
// @Param		id	path		string	true	"job id"
// @Success	200	{object}	app.BulkJob
// @Failure	404	{object}	server.ErrorResponse
// @Router		/api/bulk/{id} [get]
func (this *BulkHttpHandler) job(fctx fiber.Ctx) error {
	job, err := this.service.Job(fctx.Context(), fctx.Params("id"))
	if err != nil {
		return err
	}
	return fctx.JSON(job)
}
