package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type BulkRequest struct {
	Rows            []app.RawRow        `json:"rows" validate:"required,min=1"`
	Mappings        []app.ColumnMapping `json:"mappings" validate:"required,dive"`
	BusinessName    string              `json:"businessName"`
	BusinessType    string              `json:"businessType"`
	BusinessContext string              `json:"businessContext"`
	BusinessUrl     string              `json:"businessUrl"`
	LogoUrl         string              `json:"logoUrl"`
	Theme           *app.Theme          `json:"theme"`
	ThemeName       string              `json:"themeName"`
}

func (this *BulkRequest) ToBulkInput() *app.BulkInput {
	return &app.BulkInput{
		Rows:     this.Rows,
		Mappings: this.Mappings,
		Business: app.Business{
			Name:    this.BusinessName,
			Type:    this.BusinessType,
			Context: this.BusinessContext,
			URL:     this.BusinessUrl,
			LogoURL: this.LogoUrl,
		},
		Theme:     this.Theme,
		ThemeName: this.ThemeName,
	}
}

type BulkStartedResponse struct {
	JobId string `json:"jobId"`
}
