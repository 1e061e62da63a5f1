package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type IngestResponse struct {
	Columns  []string            `json:"columns"`
	Rows     []app.RawRow        `json:"rows"`
	Mappings []app.ColumnMapping `json:"mappings"`
}
