package report_service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
)

const emptyReport = "Error generating report"

type ReportService struct {
	model   app.LanguageModel
	website app.WebsiteFetcher
	themes  app.ThemeService
	log     *slog.Logger
	period  string
}

var _ app.ReportGenerator = &ReportService{}

func New(
	cfg *config.Config,
	model app.LanguageModel,
	website app.WebsiteFetcher,
	themes app.ThemeService,
	log *slog.Logger,
) *ReportService {
	return &ReportService{
		model:   model,
		website: website,
		themes:  themes,
		log:     log,
		period:  cfg.Report.Period,
	}
}

// Generate builds the prompt for one customer, calls the language model once
// and sanitises its answer into slides. A response that is not a slide list
// is returned as text with nil slides.
func (this *ReportService) Generate(ctx context.Context, req *app.ReportRequest) (*app.ReportResult, error) {
	if !this.model.Configured() {
		return nil, errs.New(errs.KindConfig, "API key not configured", "GROQ_API_KEY environment variable is missing")
	}

	theme, err := this.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	var summary string
	if req.Business.URL != "" {
		summary = this.website.Fetch(ctx, req.Business.URL)
	}

	prompt, err := BuildPrompt(PromptInput{
		Customer:       req.Customer,
		Business:       req.Business,
		Period:         this.period,
		WebsiteSummary: summary,
		Gradients:      theme.Gradients,
	})
	if err != nil {
		return nil, errs.Wrap(err, &errs.Opts{Message: "Failed to build report prompt"})
	}

	content, err := this.model.Complete(ctx, prompt)
	if err != nil {
		return nil, errs.Wrap(err, &errs.Opts{Kind: errs.KindUpstream, Message: "Failed to generate report"})
	}
	if content == "" {
		content = emptyReport
	}

	report, slides := Sanitize(content)
	if slides == nil {
		this.log.Warn("model response is not a slide list, returning text",
			"customer", req.Customer.Name, "length", len(report))
	}
	ApplyGradients(slides, theme.Gradients)

	return &app.ReportResult{Report: report, Slides: slides}, nil
}

func (this *ReportService) resolveTheme(req *app.ReportRequest) (app.Theme, error) {
	if req.Theme != nil && len(req.Theme.Gradients) > 0 {
		return *req.Theme, nil
	}
	if req.ThemeName != "" {
		theme, ok := this.themes.ByName(req.ThemeName)
		if !ok {
			return app.Theme{}, errs.Validation(fmt.Errorf("unknown theme %q", req.ThemeName))
		}
		return theme, nil
	}
	return this.themes.Default(), nil
}
