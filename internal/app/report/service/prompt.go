package report_service

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
)

const (
	defaultBusinessType = "Service Business"
	defaultBusinessName = "Our Business"
)

// DefaultGradients are used when the request carries no theme.
var DefaultGradients = []string{
	"bg-gradient-to-br from-purple-600 to-blue-600",
	"bg-gradient-to-br from-orange-500 to-pink-600",
	"bg-gradient-to-br from-green-500 to-teal-600",
	"bg-gradient-to-br from-yellow-500 to-red-600",
	"bg-gradient-to-br from-indigo-600 to-purple-700",
}

type PromptInput struct {
	Customer       app.Customer
	Business       app.Business
	Period         string
	WebsiteSummary string
	Gradients      []string
}

type promptData struct {
	BusinessType string
	BusinessName string
	Period       string
	Month        string
	NextMonth    string
	Context      string
	Website      string
	CustomerName string
	FirstName    string
	Metadata     string
	G            []string
	Cycle        string
}

var promptTemplate = template.Must(template.New("prompt").Parse(`You are creating a fun, visual "Year Wrapped" style report for a customer. Generate a JSON structure with 6-8 slides that tell their story through data.

Business Context:
- Business Type: {{.BusinessType}}
- Business Name: {{.BusinessName}}
- Report Period: {{.Period}}
{{if .Context}}- About the Business: {{.Context}}{{end}}{{if .Website}}
- Website Summary: {{.Website}}{{end}}

Customer Data:
Name: {{.CustomerName}}
{{.Metadata}}

Create a JSON array of slides with various types. You MUST use the actual numbers from the metadata above!

Available slide types and their structures:

1. INTRO slide:
{
  "type": "intro",
  "title": "Your {{.Month}} Wrapped",
  "subtitle": "{{.FirstName}}, let's celebrate!",
  "icon": "🎉",
  "gradient": "{{index .G 0}}"
}

2. STAT slide (big number):
{
  "type": "stat",
  "mainStat": "45",
  "statLabel": "Workouts Completed",
  "icon": "💪",
  "gradient": "{{index .G 1}}"
}

3. CHART slide (with visual chart):
{
  "type": "chart",
  "title": "Your Activity Breakdown",
  "gradient": "{{index .G 2}}",
  "chartData": {
    "type": "bars",
    "data": [
      {"label": "Strength", "value": 25},
      {"label": "Cardio", "value": 18},
      {"label": "Yoga", "value": 10}
    ]
  }
}

OR progress ring:
{
  "type": "chart",
  "title": "Consistency Score",
  "gradient": "{{index .G 2}}",
  "chartData": {
    "type": "progress",
    "percentage": 85,
    "label": "Monthly Goal"
  }
}

4. GRID slide (2x2 stats):
{
  "type": "grid",
  "title": "Your Stats at a Glance",
  "gradient": "{{index .G 3}}",
  "chartData": {
    "items": [
      {"icon": "🔥", "value": "28", "label": "Day Streak"},
      {"icon": "⚡", "value": "3.2k", "label": "Kg Lifted"},
      {"icon": "🏆", "value": "Top 10%", "label": "Rank"},
      {"icon": "⭐", "value": "16", "label": "Classes"}
    ]
  }
}

5. LEADERBOARD slide:
{
  "type": "leaderboard",
  "gradient": "{{index .G 4}}",
  "chartData": {
    "position": 45,
    "total": 500,
    "category": "Workout Consistency"
  }
}

6. COMPARISON slide:
{
  "type": "comparison",
  "title": "That's like lifting",
  "mainStat": "2 Elephants!",
  "comparison": "3,200kg = 2 baby elephants 🐘",
  "icon": "🐘",
  "gradient": "{{index .G 0}}"
}

7. ACHIEVEMENT slide:
{
  "type": "achievement",
  "title": "Elite Status Unlocked!",
  "subtitle": "Only 12% hit 30+ days",
  "icon": "🏆",
  "gradient": "{{index .G 1}}"
}

8. CLOSING slide:
{
  "type": "closing",
  "title": "{{.NextMonth}} Awaits!",
  "subtitle": "Let's make it even better",
  "icon": "🚀",
  "gradient": "{{index .G 2}}"
}

RULES:
1. Create 6-8 slides using a MIX of the above types
2. Use ACTUAL numbers from metadata - be specific!
3. Include at least 1-2 chart/grid/leaderboard slides for visual interest
4. Use creative comparisons for fun facts
5. Vary gradients - cycle through: {{.Cycle}}
6. Use emojis that match the content
7. Make stats shareable and brag-worthy!
8. Keep text SHORT and PUNCHY

Return ONLY the JSON array, nothing else.`))

// BuildPrompt renders the generation request. The output depends only on in.
func BuildPrompt(in PromptInput) (string, error) {
	var gradients = in.Gradients
	if len(gradients) == 0 {
		gradients = DefaultGradients
	}

	var month, next = periodMonths(in.Period)
	var data = promptData{
		BusinessType: orDefault(in.Business.Type, defaultBusinessType),
		BusinessName: orDefault(in.Business.Name, defaultBusinessName),
		Period:       in.Period,
		Month:        month,
		NextMonth:    next,
		Context:      in.Business.Context,
		Website:      in.WebsiteSummary,
		CustomerName: in.Customer.Name,
		FirstName:    strings.Split(in.Customer.Name, " ")[0],
		Metadata:     metadataBlock(in.Customer.Metadata),
		G:            cycled(gradients, 5),
		Cycle:        strings.Join(gradients, ", "),
	}

	return renderPrompt(promptTemplate, data)
}

func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

func metadataBlock(md *app.Metadata) string {
	if md == nil || md.Len() == 0 {
		return ""
	}

	var lines = make([]string, 0, md.Len())
	for pair := md.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, "- "+pair.Key+": "+app.FormatValue(pair.Value))
	}
	return "\nAdditional Customer Stats (use these for creative comparisons!):\n" + strings.Join(lines, "\n")
}

// periodMonths returns the month named by a "January 2006" period and the one after it.
func periodMonths(period string) (string, string) {
	if t, err := time.Parse("January 2006", strings.TrimSpace(period)); err == nil {
		return t.Month().String(), t.AddDate(0, 1, 0).Month().String()
	}

	var fields = strings.Fields(period)
	if len(fields) == 0 {
		return "Monthly", "Next Month"
	}
	return fields[0], "Next Month"
}

func cycled(values []string, n int) []string {
	var out = make([]string, n)
	for i := range out {
		out[i] = values[i%len(values)]
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
