package app

type Theme struct {
	Name         string   `json:"name" yaml:"name"`
	Gradients    []string `json:"gradients" yaml:"gradients" validate:"omitempty,len=5,dive,required"`
	PrimaryColor string   `json:"primaryColor" yaml:"primaryColor"`
	AccentColor  string   `json:"accentColor" yaml:"accentColor"`
}

// GradientAt cycles through the theme gradients.
func (this Theme) GradientAt(i int) string {
	if len(this.Gradients) == 0 {
		return ""
	}
	return this.Gradients[i%len(this.Gradients)]
}

func (this Theme) HasGradient(g string) bool {
	for _, tg := range this.Gradients {
		if tg == g {
			return true
		}
	}
	return false
}

type ThemeService interface {
	Presets() []Theme
	ByName(name string) (Theme, bool)
	Default() Theme
	Custom(primary, accent string) Theme
}
