package theme_service

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var presetsYaml []byte

const CustomThemeName = "Custom"

type ThemeService struct {
	presets []app.Theme
}

var _ app.ThemeService = &ThemeService{}

func New() (*ThemeService, error) {
	var presets []app.Theme
	if err := yaml.Unmarshal(presetsYaml, &presets); err != nil {
		return nil, fmt.Errorf("load theme presets: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("load theme presets: no presets defined")
	}
	return &ThemeService{presets}, nil
}

func (this *ThemeService) Presets() []app.Theme {
	var out = make([]app.Theme, len(this.presets))
	copy(out, this.presets)
	return out
}

func (this *ThemeService) ByName(name string) (app.Theme, bool) {
	for _, t := range this.presets {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return app.Theme{}, false
}

// Default is the first preset.
func (this *ThemeService) Default() app.Theme {
	return this.presets[0]
}

// Custom derives five gradients from two brand colors.
func (this *ThemeService) Custom(primary, accent string) app.Theme {
	return app.Theme{
		Name: CustomThemeName,
		Gradients: []string{
			fmt.Sprintf("bg-gradient-to-br from-[%s] to-[%s]", primary, accent),
			fmt.Sprintf("bg-gradient-to-br from-[%s] to-[%s]", accent, primary),
			fmt.Sprintf("bg-gradient-to-br from-purple-600 to-[%s]", primary),
			fmt.Sprintf("bg-gradient-to-br from-[%s] to-pink-600", primary),
			fmt.Sprintf("bg-gradient-to-br from-blue-600 to-[%s]", accent),
		},
		PrimaryColor: primary,
		AccentColor:  accent,
	}
}
