package dtos

import "github.com/init-pkg/wrapped-reports/domain/app"

type CustomThemeRequest struct {
	PrimaryColor string `json:"primaryColor" validate:"required,hexcolor"`
	AccentColor  string `json:"accentColor" validate:"required,hexcolor"`
}

type ThemesResponse struct {
	Themes  []app.Theme `json:"themes"`
	Default string      `json:"default"`
}
