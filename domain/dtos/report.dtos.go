package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type GenerateReportRequest struct {
	Customer        app.Customer `json:"customer" validate:"required"`
	BusinessName    string       `json:"businessName"`
	BusinessType    string       `json:"businessType"`
	BusinessContext string       `json:"businessContext"`
	BusinessUrl     string       `json:"businessUrl"`
	LogoUrl         string       `json:"logoUrl"`
	Theme           *app.Theme   `json:"theme" validate:"omitempty"`
	ThemeName       string       `json:"themeName"`
}

func (this *GenerateReportRequest) ToReportRequest() *app.ReportRequest {
	return &app.ReportRequest{
		Customer: this.Customer,
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
