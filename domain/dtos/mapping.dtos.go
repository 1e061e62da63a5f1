package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type AutoMapRequest struct {
	Columns []string `json:"columns" validate:"required"`
}

type SuggestMappingRequest struct {
	Columns []string     `json:"columns" validate:"required"`
	Rows    []app.RawRow `json:"rows"`
}

type OverrideMappingRequest struct {
	Mappings []app.ColumnMapping `json:"mappings" validate:"required,dive"`
	Index    int                 `json:"index" validate:"min=0"`
	MappedTo app.MappedTo        `json:"mappedTo" validate:"required"`
}

type MappingsResponse struct {
	Mappings []app.ColumnMapping `json:"mappings"`
}

type PreviewCustomerRequest struct {
	Row          app.RawRow          `json:"row" validate:"required"`
	Mappings     []app.ColumnMapping `json:"mappings" validate:"required,dive"`
	FallbackName string              `json:"fallbackName"`
}
