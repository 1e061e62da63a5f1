package report_service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/tidwall/gjson"
)

var (
	jsonFence  = regexp.MustCompile("```json\n?")
	plainFence = regexp.MustCompile("```\n?")
	nonDigits  = regexp.MustCompile(`\D`)
	nonNumeric = regexp.MustCompile(`[^0-9.]`)
	floatStart = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

const (
	defaultPosition = 1
	defaultTotal    = 100
)

// Sanitize strips code fences from the model output and parses it as a
// slide list. Numeric chart fields are coerced from decorated strings.
// slides is nil when the text is not a JSON array.
func Sanitize(raw string) (report string, slides []app.Slide) {
	report = jsonFence.ReplaceAllString(raw, "")
	report = plainFence.ReplaceAllString(report, "")
	report = strings.TrimSpace(report)

	if !gjson.Valid(report) {
		return report, nil
	}
	var root = gjson.Parse(report)
	if !root.IsArray() {
		return report, nil
	}

	slides = []app.Slide{}
	root.ForEach(func(_, el gjson.Result) bool {
		if el.IsObject() {
			slides = append(slides, sanitizeSlide(el))
		}
		return true
	})
	return report, slides
}

// ApplyGradients replaces every gradient outside the theme with the one
// cycled by slide position.
func ApplyGradients(slides []app.Slide, gradients []string) {
	if len(gradients) == 0 {
		return
	}
	var theme = app.Theme{Gradients: gradients}
	for i := range slides {
		if !theme.HasGradient(slides[i].Gradient) {
			slides[i].Gradient = theme.GradientAt(i)
		}
	}
}

func sanitizeSlide(el gjson.Result) app.Slide {
	var s = app.Slide{
		Type:       app.SlideType(text(el.Get("type"))),
		Title:      text(el.Get("title")),
		Subtitle:   text(el.Get("subtitle")),
		MainStat:   text(el.Get("mainStat")),
		StatLabel:  text(el.Get("statLabel")),
		Comparison: text(el.Get("comparison")),
		Icon:       text(el.Get("icon")),
		Gradient:   text(el.Get("gradient")),
		TextColor:  text(el.Get("textColor")),
	}

	if cd := el.Get("chartData"); cd.IsObject() {
		s.ChartData = sanitizeChartData(s.Type, cd)
	}
	return s
}

func sanitizeChartData(slideType app.SlideType, cd gjson.Result) *app.ChartData {
	var c = &app.ChartData{
		Type:     app.ChartType(text(cd.Get("type"))),
		Label:    text(cd.Get("label")),
		Category: text(cd.Get("category")),
	}
	var isChart = slideType == app.SlideChart

	if pct := cd.Get("percentage"); isChart && c.Type == app.ChartProgress {
		v := looseFloat(jsString(pct))
		c.Percentage = &v
	} else if pct.Type == gjson.Number {
		v := pct.Num
		c.Percentage = &v
	}

	if data := cd.Get("data"); data.IsArray() {
		var coerce = isChart && c.Type == app.ChartBars
		data.ForEach(func(_, item gjson.Result) bool {
			if !item.IsObject() {
				return true
			}
			bar := app.Bar{
				Label: text(item.Get("label")),
				Color: text(item.Get("color")),
			}
			if value := item.Get("value"); coerce {
				bar.Value = looseFloat(jsString(value))
			} else if value.Type == gjson.Number {
				bar.Value = value.Num
			}
			c.Data = append(c.Data, bar)
			return true
		})
	}

	if items := cd.Get("items"); items.IsArray() {
		items.ForEach(func(_, item gjson.Result) bool {
			if item.IsObject() {
				c.Items = append(c.Items, app.GridItem{
					Icon:  text(item.Get("icon")),
					Value: text(item.Get("value")),
					Label: text(item.Get("label")),
				})
			}
			return true
		})
	}

	if slideType == app.SlideLeaderboard {
		position := looseInt(jsString(cd.Get("position")), defaultPosition)
		total := looseInt(jsString(cd.Get("total")), defaultTotal)
		c.Position, c.Total = &position, &total
	} else {
		c.Position = optionalInt(cd.Get("position"))
		c.Total = optionalInt(cd.Get("total"))
	}

	return c
}

// text accepts strings and numbers; other JSON types read as empty.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.String()
	}
	return ""
}

func optionalInt(r gjson.Result) *int64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := int64(r.Num)
	return &v
}

// jsString renders a JSON value the way a JavaScript String() call would,
// so decorated and undecorated inputs coerce alike.
func jsString(r gjson.Result) string {
	if !r.Exists() {
		return "undefined"
	}

	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.String()
	}

	if r.IsArray() {
		var parts []string
		r.ForEach(func(_, v gjson.Result) bool {
			if v.Type == gjson.Null {
				parts = append(parts, "")
			} else {
				parts = append(parts, jsString(v))
			}
			return true
		})
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}

// looseFloat keeps digits and dots and parses the longest leading float.
// Anything unparseable is 0.
func looseFloat(s string) float64 {
	var m = floatStart.FindString(nonNumeric.ReplaceAllString(s, ""))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// looseInt keeps digits only. Zero and unparseable values become def.
func looseInt(s string, def int64) int64 {
	v, err := strconv.ParseInt(nonDigits.ReplaceAllString(s, ""), 10, 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}
