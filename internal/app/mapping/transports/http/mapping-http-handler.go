package mapping_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
)

type MappingHttpHandler struct {
	service app.ColumnMapper
}

func New(service app.ColumnMapper) *MappingHttpHandler {
	return &MappingHttpHandler{service}
}

func (this *MappingHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/mappings")

	app.Post("/", this.autoMap)
	app.Post("/override", this.override)
	app.Post("/suggest", this.suggest)
	app.Post("/customer", this.previewCustomer)
}

// @Summary	Classify columns by keyword
// @Tags		mappings
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.AutoMapRequest	true	"column names"
// @Success	200		{object}	dtos.MappingsResponse
// @Router		/api/mappings [post]
func (this *MappingHttpHandler) autoMap(fctx fiber.Ctx) error {
	var req dtos.AutoMapRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	return fctx.JSON(dtos.MappingsResponse{Mappings: this.service.AutoMap(req.Columns)})
}

// @Summary	Change the role of one column
// @Tags		mappings
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.OverrideMappingRequest	true	"mappings and the change"
// @Success	200		{object}	dtos.MappingsResponse
// @Failure	400		{object}	server.ErrorResponse
// @Router		/api/mappings/override [post]
func (this *MappingHttpHandler) override(fctx fiber.Ctx) error {
	var req dtos.OverrideMappingRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	mappings, err := this.service.Override(req.Mappings, req.Index, req.MappedTo)
	if err != nil {
		return err
	}
	return fctx.JSON(dtos.MappingsResponse{Mappings: mappings})
}

// @Summary	Ask the language model for column roles
// @Tags		mappings
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.SuggestMappingRequest	true	"columns and sample rows"
// @Success	200		{object}	dtos.MappingsResponse
// @Router		/api/mappings/suggest [post]
func (this *MappingHttpHandler) suggest(fctx fiber.Ctx) error {
	var req dtos.SuggestMappingRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	return fctx.JSON(dtos.MappingsResponse{Mappings: this.service.Suggest(fctx.Context(), req.Columns, req.Rows)})
}

// previewCustomer shows the record a row produces, as sent for generation.
//
// @Summary	Build the customer record of one row
// @Tags		mappings
// @Accept		json
// @Produce	json
// @Param		request	body		dtos.PreviewCustomerRequest	true	"row and mappings"
// @Success	200		{object}	app.Customer
// @Router		/api/mappings/customer [post]
func (this *MappingHttpHandler) previewCustomer(fctx fiber.Ctx) error {
	var req dtos.PreviewCustomerRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return err
	}

	var fallback = req.FallbackName
	if fallback == "" {
		fallback = app.SampleCustomerName
	}
	return fctx.JSON(this.service.BuildCustomer(req.Row, req.Mappings, fallback))
}
