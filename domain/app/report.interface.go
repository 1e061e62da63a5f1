package app

import "context"

type Business struct {
	Name    string
	Type    string
	Context string
	URL     string
	LogoURL string
}

// ReportRequest carries an explicit Theme or a preset ThemeName; neither
// selects the default preset.
type ReportRequest struct {
	Customer  Customer
	Business  Business
	Theme     *Theme
	ThemeName string
}

type ReportResult struct {
	Report string  `json:"report"`
	Slides []Slide `json:"slides"`
}

type ReportGenerator interface {
	Generate(ctx context.Context, req *ReportRequest) (*ReportResult, error)
}

// JSONSchema describes a structured response format for the language model.
type JSONSchema struct {
	Name        string
	Description string
	Schema      any
}

type LanguageModel interface {
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteJSON(ctx context.Context, system, user string, schema JSONSchema) (string, error)
}

type WebsiteFetcher interface {
	Fetch(ctx context.Context, url string) string
}
