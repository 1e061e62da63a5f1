package slideshow_service

import (
	"strings"
	"testing"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testRenderer() *SlideRenderer {
	return NewRenderer(&config.Config{Clients: config.Clients{Browser: config.Browser{Width: 448, Height: 796}}})
}

func testView() *app.DeckView {
	return &app.DeckView{
		CustomerName: "Ann",
		BusinessName: "Acme Gym",
		LogoURL:      "https://acme.test/logo.png",
		Slides: []app.Slide{
			{Type: app.SlideIntro, Title: "Your November Wrapped", Subtitle: "Ann, let's celebrate!", Gradient: "bg-gradient-to-br from-purple-600 to-blue-600"},
			{Type: app.SlideStat, MainStat: "45", StatLabel: "Visits", Gradient: "bg-gradient-to-br from-orange-500 to-pink-600"},
			{Type: app.SlideChart, Title: "Goal", Gradient: "g", ChartData: &app.ChartData{Type: app.ChartProgress, Percentage: ptr(85.0), Label: "Monthly Goal"}},
			{Type: app.SlideChart, Title: "Mix", Gradient: "g", ChartData: &app.ChartData{Type: app.ChartBars, Data: []app.Bar{{Label: "Spin", Value: 20}, {Label: "Yoga", Value: 5, Color: "bg-yellow-400"}}}},
			{Type: app.SlideGrid, Title: "Glance", Gradient: "g", ChartData: &app.ChartData{Items: []app.GridItem{{Icon: "🔥", Value: "28", Label: "Day Streak"}}}},
			{Type: app.SlideLeaderboard, Gradient: "g", ChartData: &app.ChartData{Position: ptr(int64(45)), Total: ptr(int64(500)), Category: "Visits"}},
			{Type: app.SlideClosing, Title: "December Awaits!", Subtitle: "Let's make it even better", Gradient: "g"},
		},
	}
}

func TestRenderDeck(t *testing.T) {
	page, err := testRenderer().RenderDeck(testView())

	require.NoError(t, err)
	assert.Contains(t, page, "<title>Ann Wrapped</title>")
	assert.Contains(t, page, "/ 7</div>")
	assert.Equal(t, 7, strings.Count(page, `class="slide"`))
	assert.Contains(t, page, `id="slide-6"`)
	assert.Contains(t, page, "Tap to continue →")
	assert.Contains(t, page, "linear-gradient(to bottom right, #9333ea, #2563eb)")
	assert.Contains(t, page, "Acme Gym")
	assert.Contains(t, page, "← Previous")
	assert.Contains(t, page, "Next →")
	assert.Contains(t, page, "Let&#39;s make it even better")
}

func TestRenderSlideVariants(t *testing.T) {
	r := testRenderer()
	view := testView()

	stat, err := r.RenderSlide(view, 1)
	require.NoError(t, err)
	assert.Contains(t, stat, `id="slide"`)
	assert.Contains(t, stat, "📊")
	assert.Contains(t, stat, ">45<")
	assert.Contains(t, stat, "width: 448px")

	ring, err := r.RenderSlide(view, 2)
	require.NoError(t, err)
	assert.Contains(t, ring, `r="90"`)
	assert.Contains(t, ring, "85%")
	assert.Contains(t, ring, "Monthly Goal")

	bars, err := r.RenderSlide(view, 3)
	require.NoError(t, err)
	assert.Contains(t, bars, "width: 100%")
	assert.Contains(t, bars, "width: 25%")
	assert.Contains(t, bars, "#facc15")

	grid, err := r.RenderSlide(view, 4)
	require.NoError(t, err)
	assert.Contains(t, grid, "Day Streak")

	board, err := r.RenderSlide(view, 5)
	require.NoError(t, err)
	assert.Contains(t, board, "#45")
	assert.Contains(t, board, "out of 500")
	assert.Contains(t, board, "Top 91% in Visits")

	closing, err := r.RenderSlide(view, 6)
	require.NoError(t, err)
	assert.Contains(t, closing, "💪")
	assert.Contains(t, closing, "Acme Gym")
}

func TestRenderSlideEscapes(t *testing.T) {
	view := &app.DeckView{CustomerName: "x", Slides: []app.Slide{
		{Type: app.SlideIntro, Title: "<script>alert(1)</script>", Gradient: "from-[red;}]"},
	}}

	out, err := testRenderer().RenderSlide(view, 0)

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "background: linear-gradient(to bottom right, #6b7280, #6b7280)")
}

func TestRenderSlideOutOfRange(t *testing.T) {
	_, err := testRenderer().RenderSlide(testView(), 7)

	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
}

func TestLeaderboardClamp(t *testing.T) {
	lb := leaderboard(&app.ChartData{Position: ptr(int64(600)), Total: ptr(int64(500))})
	assert.Equal(t, 0.0, lb.Percent)

	lb = leaderboard(&app.ChartData{Position: ptr(int64(1)), Total: ptr(int64(0))})
	assert.Equal(t, 0.0, lb.Percent)

	lb = leaderboard(&app.ChartData{})
	assert.Equal(t, int64(1), lb.Position)
	assert.Equal(t, int64(100), lb.Total)
	assert.Equal(t, 100.0, lb.Percent)
}

func TestProgressRingGeometry(t *testing.T) {
	ring := progressRing(&app.ChartData{Percentage: ptr(50.0)})

	assert.Equal(t, 90.0, ring.Radius)
	assert.InDelta(t, 565.4867, ring.Circumference, 1e-3)
	assert.InDelta(t, ring.Circumference/2, ring.Offset, 1e-9)
}
