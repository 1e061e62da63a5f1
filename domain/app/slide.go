package app

type SlideType string

const (
	SlideIntro       SlideType = "intro"
	SlideStat        SlideType = "stat"
	SlideChart       SlideType = "chart"
	SlideGrid        SlideType = "grid"
	SlideLeaderboard SlideType = "leaderboard"
	SlideComparison  SlideType = "comparison"
	SlideAchievement SlideType = "achievement"
	SlideClosing     SlideType = "closing"
)

type ChartType string

const (
	ChartBars     ChartType = "bars"
	ChartProgress ChartType = "progress"
)

// Slide is one generated report slide. ChartData fields are populated
// according to Type: bars or progress for chart, items for grid,
// position/total/category for leaderboard.
type Slide struct {
	Type       SlideType  `json:"type" jsonschema:"enum=intro,enum=stat,enum=chart,enum=grid,enum=leaderboard,enum=comparison,enum=achievement,enum=closing"`
	Title      string     `json:"title,omitempty"`
	Subtitle   string     `json:"subtitle,omitempty"`
	MainStat   string     `json:"mainStat,omitempty"`
	StatLabel  string     `json:"statLabel,omitempty"`
	Comparison string     `json:"comparison,omitempty"`
	Icon       string     `json:"icon,omitempty"`
	Gradient   string     `json:"gradient"`
	TextColor  string     `json:"textColor,omitempty"`
	ChartData  *ChartData `json:"chartData,omitempty"`
}

type ChartData struct {
	Type       ChartType  `json:"type,omitempty" jsonschema:"enum=bars,enum=progress"`
	Data       []Bar      `json:"data,omitempty"`
	Percentage *float64   `json:"percentage,omitempty"`
	Label      string     `json:"label,omitempty"`
	Items      []GridItem `json:"items,omitempty"`
	Position   *int64     `json:"position,omitempty"`
	Total      *int64     `json:"total,omitempty"`
	Category   string     `json:"category,omitempty"`
}

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

type GridItem struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type GeneratedReport struct {
	Customer Customer `json:"customer"`
	Report   string   `json:"report"`
	Slides   []Slide  `json:"slides"`
}
