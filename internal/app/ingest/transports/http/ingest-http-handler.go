package ingest_http_handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
	"github.com/init-pkg/wrapped-reports/domain/errs"
)

type IngestHttpHandler struct {
	service app.Ingestor
	mapper  app.ColumnMapper
}

func New(service app.Ingestor, mapper app.ColumnMapper) *IngestHttpHandler {
	return &IngestHttpHandler{service, mapper}
}

func (this *IngestHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/ingest")

	app.Post("/", this.upload)
}

// upload accepts a multipart "file" field and returns rows, columns and
// default column mappings.
//
// @Summary	Parse an uploaded csv, xlsx or xls file
// @Tags		ingest
// @Accept		multipart/form-data
// @Produce	json
// @Param		file	formData	file	true	"customer export"
// @Success	200	{object}	dtos.IngestResponse
// @Failure	400	{object}	server.ErrorResponse
// @Router		/api/ingest [post]
func (this *IngestHttpHandler) upload(fctx fiber.Ctx) error {
	fh, err := fctx.FormFile("file")
	if err != nil {
		return errs.Validation(fmt.Errorf("file field is required: %w", err))
	}

	f, err := fh.Open()
	if err != nil {
		return errs.Wrap(err, &errs.Opts{Message: "Failed to read upload"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errs.Wrap(err, &errs.Opts{Message: "Failed to read upload"})
	}

	res, err := this.service.Ingest(fctx.Context(), fh.Filename, data)
	if err != nil {
		return err
	}

	return fctx.JSON(dtos.IngestResponse{
		Columns:  res.Columns,
		Rows:     res.Rows,
		Mappings: this.mapper.AutoMap(res.Columns),
	})
}
