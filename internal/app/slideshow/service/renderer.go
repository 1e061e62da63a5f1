package slideshow_service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	ringSize   = 200.0
	ringStroke = 20.0
)

var defaultIcons = map[app.SlideType]string{
	app.SlideIntro:       "🎉",
	app.SlideStat:        "📊",
	app.SlideComparison:  "🔥",
	app.SlideAchievement: "🏆",
	app.SlideClosing:     "💪",
}

type SlideRenderer struct {
	width  int
	height int
}

var _ app.SlideRenderer = &SlideRenderer{}

func NewRenderer(cfg *config.Config) *SlideRenderer {
	return &SlideRenderer{
		width:  cfg.Clients.Browser.Width,
		height: cfg.Clients.Browser.Height,
	}
}

type slideView struct {
	ID           string
	Index        int
	Type         string
	Title        string
	Subtitle     string
	MainStat     string
	StatLabel    string
	Comparison   string
	Icon         string
	BusinessName string
	LogoURL      string
	Background   template.CSS
	TextColor    template.CSS
	HasChart     bool
	Ring         *ringView
	Bars         []barView
	Grid         []app.GridItem
	Leaderboard  *leaderboardView
	Dots         []bool
}

type ringView struct {
	Size          float64
	Stroke        float64
	Center        float64
	Radius        float64
	Circumference float64
	Offset        float64
	Percentage    string
	Label         string
}

type barView struct {
	Label string
	Value string
	Width float64
	Color template.CSS
}

type leaderboardView struct {
	Position int64
	Total    int64
	Category string
	Percent  float64
	Rounded  int64
}

type deckPage struct {
	CustomerName string
	Width        int
	Height       int
	Slides       []slideView
}

type singlePage struct {
	CustomerName string
	Number       int
	Width        int
	Height       int
	Slide        slideView
}

// RenderDeck renders the navigable page with every slide of the deck.
func (this *SlideRenderer) RenderDeck(view *app.DeckView) (string, error) {
	var page = deckPage{
		CustomerName: view.CustomerName,
		Width:        this.width,
		Height:       this.height,
		Slides:       make([]slideView, len(view.Slides)),
	}
	for i := range view.Slides {
		page.Slides[i] = buildSlideView(view, i, fmt.Sprintf("slide-%d", i))
	}

	return execute("deck.html", page)
}

// RenderSlide renders a standalone document holding only the slide at index,
// wrapped in the element the rasterizer captures.
func (this *SlideRenderer) RenderSlide(view *app.DeckView, index int) (string, error) {
	if index < 0 || index >= len(view.Slides) {
		return "", errs.Validation(fmt.Errorf("slide index %d out of range [0, %d)", index, len(view.Slides)))
	}

	return execute("single.html", singlePage{
		CustomerName: view.CustomerName,
		Number:       index + 1,
		Width:        this.width,
		Height:       this.height,
		Slide:        buildSlideView(view, index, "slide"),
	})
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errs.Wrap(err, &errs.Opts{Kind: errs.KindInternal, Message: "Failed to render slides"})
	}
	return buf.String(), nil
}

func buildSlideView(view *app.DeckView, index int, id string) slideView {
	var s = view.Slides[index]

	var v = slideView{
		ID:           id,
		Index:        index,
		Type:         string(s.Type),
		Title:        s.Title,
		Subtitle:     s.Subtitle,
		MainStat:     s.MainStat,
		StatLabel:    s.StatLabel,
		Comparison:   s.Comparison,
		Icon:         s.Icon,
		BusinessName: view.BusinessName,
		LogoURL:      view.LogoURL,
		Background:   template.CSS(GradientCSS(s.Gradient)),
		TextColor:    template.CSS(TextColorCSS(s.TextColor)),
		HasChart:     s.ChartData != nil,
		Dots:         make([]bool, len(view.Slides)),
	}
	v.Dots[index] = true

	if v.Icon == "" {
		v.Icon = defaultIcons[s.Type]
	}

	if cd := s.ChartData; cd != nil {
		switch {
		case s.Type == app.SlideChart && cd.Type == app.ChartProgress:
			v.Ring = progressRing(cd)
		case s.Type == app.SlideChart && cd.Type == app.ChartBars:
			v.Bars = barChart(cd.Data)
		case s.Type == app.SlideGrid:
			v.Grid = cd.Items
		case s.Type == app.SlideLeaderboard:
			v.Leaderboard = leaderboard(cd)
		}
	}

	return v
}

func progressRing(cd *app.ChartData) *ringView {
	var pct float64
	if cd.Percentage != nil {
		pct = *cd.Percentage
	}

	var radius = (ringSize - ringStroke) / 2
	var circumference = radius * 2 * math.Pi

	return &ringView{
		Size:          ringSize,
		Stroke:        ringStroke,
		Center:        ringSize / 2,
		Radius:        radius,
		Circumference: circumference,
		Offset:        circumference - (pct/100)*circumference,
		Percentage:    formatNumber(pct),
		Label:         cd.Label,
	}
}

// barChart scales each bar against the largest value.
func barChart(data []app.Bar) []barView {
	var maxValue float64
	for i, b := range data {
		if i == 0 || b.Value > maxValue {
			maxValue = b.Value
		}
	}

	var bars = make([]barView, len(data))
	for i, b := range data {
		var width float64
		if maxValue > 0 {
			width = b.Value / maxValue * 100
		}
		bars[i] = barView{
			Label: b.Label,
			Value: formatNumber(b.Value),
			Width: width,
			Color: template.CSS(BarColorCSS(b.Color)),
		}
	}
	return bars
}

func leaderboard(cd *app.ChartData) *leaderboardView {
	var position, total int64 = 1, 100
	if cd.Position != nil {
		position = *cd.Position
	}
	if cd.Total != nil {
		total = *cd.Total
	}

	var pct float64
	if total > 0 {
		pct = float64(total-position+1) / float64(total) * 100
	}

	return &leaderboardView{
		Position: position,
		Total:    total,
		Category: cd.Category,
		Percent:  math.Min(100, math.Max(0, pct)),
		Rounded:  int64(math.Round(pct)),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
