package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/internal/app/session"
	"github.com/spf13/cobra"
)

type workflowFlags struct {
	businessName string
	businessType string
	context      string
	url          string
	logo         string
	theme        string
	primary      string
	accent       string
	mappings     []string
}

func (this *workflowFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&this.businessName, "business-name", "", "business name shown on the slides")
	f.StringVar(&this.businessType, "business-type", "", "kind of business, e.g. coffee shop")
	f.StringVar(&this.context, "context", "", "free text about the business")
	f.StringVar(&this.url, "url", "", "business website to summarize")
	f.StringVar(&this.logo, "logo", "", "logo url")
	f.StringVar(&this.theme, "theme", "", "theme preset name")
	f.StringVar(&this.primary, "primary", "", "custom theme primary color (#rrggbb)")
	f.StringVar(&this.accent, "accent", "", "custom theme accent color (#rrggbb)")
	f.StringArrayVar(&this.mappings, "map", nil, "column role override as column=role, repeatable")
}

func (this *workflowFlags) business() app.Business {
	return app.Business{
		Name:    this.businessName,
		Type:    this.businessType,
		Context: this.context,
		URL:     this.url,
		LogoURL: this.logo,
	}
}

func (this *workflowFlags) resolveTheme(themes app.ThemeService) (app.Theme, error) {
	if this.primary != "" || this.accent != "" {
		if !hexColor(this.primary) || !hexColor(this.accent) {
			return app.Theme{}, fmt.Errorf("custom theme needs --primary and --accent as #rrggbb")
		}
		return themes.Custom(this.primary, this.accent), nil
	}
	if this.theme == "" {
		return themes.Default(), nil
	}
	t, ok := themes.ByName(this.theme)
	if !ok {
		return app.Theme{}, fmt.Errorf("unknown theme %q", this.theme)
	}
	return t, nil
}

// ingest reads the file and moves a fresh session to the mapping step.
func ingest(ctx context.Context, svc *services, path string) (session.Session, error) {
	sess := session.New(svc.themes.Default())

	data, err := os.ReadFile(path)
	if err != nil {
		return sess, err
	}

	res, err := svc.ingestor.Ingest(ctx, filepath.Base(path), data)
	if err != nil {
		return sess, err
	}

	return sess.Ingested(res, svc.mapper.AutoMap(res.Columns))
}

// configure applies overrides, business details and the theme.
func configure(svc *services, sess session.Session, flags *workflowFlags) (session.Session, error) {
	mappings, err := applyOverrides(svc.mapper, sess.Mappings(), flags.mappings)
	if err != nil {
		return sess, err
	}
	if sess, err = sess.Remap(mappings); err != nil {
		return sess, err
	}
	if sess, err = sess.WithBusiness(flags.business()); err != nil {
		return sess, err
	}

	theme, err := flags.resolveTheme(svc.themes)
	if err != nil {
		return sess, err
	}
	return sess.WithTheme(theme)
}

// preview generates the report of the first row and moves to the preview step.
func preview(ctx context.Context, svc *services, sess session.Session) (session.Session, error) {
	rows := sess.Rows()
	if len(rows) == 0 {
		return sess, session.ErrNoRows
	}

	var (
		theme    = sess.Theme()
		customer = svc.mapper.BuildCustomer(rows[0], sess.Mappings(), app.SampleCustomerName)
	)
	res, err := svc.reports.Generate(ctx, &app.ReportRequest{
		Customer: customer,
		Business: sess.Business(),
		Theme:    &theme,
	})
	if err != nil {
		return sess, err
	}

	return sess.Previewed(app.GeneratedReport{Customer: customer, Report: res.Report, Slides: res.Slides})
}

// applyOverrides applies column=role pairs in order; a later pair for the
// same column wins.
func applyOverrides(mapper app.ColumnMapper, mappings []app.ColumnMapping, overrides []string) ([]app.ColumnMapping, error) {
	for _, o := range overrides {
		column, role, err := parseOverride(o)
		if err != nil {
			return nil, err
		}

		index := -1
		for i, m := range mappings {
			if strings.EqualFold(m.OriginalName, column) {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("--map %s: no such column", o)
		}

		if mappings, err = mapper.Override(mappings, index, role); err != nil {
			return nil, fmt.Errorf("--map %s: %w", o, err)
		}
	}
	return mappings, nil
}

func parseOverride(s string) (string, app.MappedTo, error) {
	column, role, ok := strings.Cut(s, "=")
	column = strings.TrimSpace(column)
	if !ok || column == "" {
		return "", "", fmt.Errorf("--map %s: expected column=role", s)
	}
	return column, app.MappedTo(strings.ToLower(strings.TrimSpace(role))), nil
}

func hexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// slug turns a customer name into a directory name.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "customer"
	}
	return out
}
