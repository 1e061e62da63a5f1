package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/init-pkg/wrapped-reports/domain/app"
)

type Step string

const (
	StepUpload     Step = "upload"
	StepMapping    Step = "mapping"
	StepPreview    Step = "preview"
	StepGenerating Step = "generating"
	StepComplete   Step = "complete"
)

var ErrIllegalTransition = errors.New("illegal session transition")

var ErrInvalidMappings = errors.New("mappings do not match the ingested columns")

var ErrNoRows = errors.New("no data to process")

// Session is the state of one upload-to-reports workflow. Every transition
// returns a new value and leaves the receiver untouched.
type Session struct {
	step     Step
	columns  []string
	rows     []app.RawRow
	mappings []app.ColumnMapping
	business app.Business
	theme    app.Theme
	sample   *app.GeneratedReport
	progress app.BulkProgress
	reports  []app.GeneratedReport
	failures []app.BulkFailure
}

func New(theme app.Theme) Session {
	return Session{step: StepUpload, theme: theme}
}

func (this Session) Step() Step { return this.step }
func (this Session) Columns() []string { return slices.Clone(this.columns) }
func (this Session) Rows() []app.RawRow { return slices.Clone(this.rows) }
func (this Session) Mappings() []app.ColumnMapping { return slices.Clone(this.mappings) }
func (this Session) Business() app.Business { return this.business }
func (this Session) Theme() app.Theme { return this.theme }
func (this Session) Sample() *app.GeneratedReport { return this.sample }
func (this Session) Progress() app.BulkProgress { return this.progress }
func (this Session) Reports() []app.GeneratedReport { return slices.Clone(this.reports) }
func (this Session) Failures() []app.BulkFailure { return slices.Clone(this.failures) }

// Ingested loads a parsed file. An empty file is a valid, if useless, state.
func (this Session) Ingested(res *app.IngestResult, mappings []app.ColumnMapping) (Session, error) {
	if err := this.expect("ingest", StepUpload, StepMapping); err != nil {
		return this, err
	}

	var next = this
	next.columns = slices.Clone(res.Columns)
	next.rows = slices.Clone(res.Rows)
	next.sample = nil
	next.step = StepMapping

	out, err := next.withMappings(mappings)
	if err != nil {
		return this, err
	}
	return out, nil
}

// Remap replaces the column mappings, one per ingested column.
func (this Session) Remap(mappings []app.ColumnMapping) (Session, error) {
	if err := this.expect("remap", StepMapping); err != nil {
		return this, err
	}
	return this.withMappings(mappings)
}

func (this Session) WithBusiness(b app.Business) (Session, error) {
	if err := this.expect("set business", StepUpload, StepMapping, StepPreview, StepComplete); err != nil {
		return this, err
	}
	var next = this
	next.business = b
	return next, nil
}

func (this Session) WithTheme(t app.Theme) (Session, error) {
	if err := this.expect("set theme", StepUpload, StepMapping, StepPreview, StepComplete); err != nil {
		return this, err
	}
	var next = this
	next.theme = t
	return next, nil
}

// Previewed records the sample report generated for the first row.
func (this Session) Previewed(sample app.GeneratedReport) (Session, error) {
	if err := this.expect("preview", StepMapping); err != nil {
		return this, err
	}
	var next = this
	next.sample = &sample
	next.step = StepPreview
	return next, nil
}

func (this Session) BackToMapping() (Session, error) {
	if err := this.expect("back to mapping", StepPreview); err != nil {
		return this, err
	}
	var next = this
	next.step = StepMapping
	return next, nil
}

func (this Session) BulkStarted() (Session, error) {
	if err := this.expect("start bulk", StepPreview, StepComplete); err != nil {
		return this, err
	}
	if len(this.rows) == 0 {
		return this, ErrNoRows
	}

	var next = this
	next.step = StepGenerating
	next.progress = app.BulkProgress{Current: 0, Total: len(this.rows)}
	next.reports = nil
	next.failures = nil
	return next, nil
}

func (this Session) BulkProgressed(p app.BulkProgress) (Session, error) {
	if err := this.expect("bulk progress", StepGenerating); err != nil {
		return this, err
	}
	var next = this
	next.progress = p
	return next, nil
}

func (this Session) BulkCompleted(res *app.BulkResult) (Session, error) {
	if err := this.expect("complete bulk", StepGenerating); err != nil {
		return this, err
	}
	var next = this
	next.step = StepComplete
	next.reports = slices.Clone(res.Reports)
	next.failures = slices.Clone(res.Failures)
	return next, nil
}

func (this Session) withMappings(mappings []app.ColumnMapping) (Session, error) {
	if len(mappings) != len(this.columns) {
		return this, fmt.Errorf("%w: %d mappings for %d columns", ErrInvalidMappings, len(mappings), len(this.columns))
	}

	var seen = make(map[string]bool, len(mappings))
	for _, m := range mappings {
		if seen[m.OriginalName] || !slices.Contains(this.columns, m.OriginalName) {
			return this, fmt.Errorf("%w: %q", ErrInvalidMappings, m.OriginalName)
		}
		seen[m.OriginalName] = true
	}

	var next = this
	next.mappings = slices.Clone(mappings)
	return next, nil
}

func (this Session) expect(action string, allowed ...Step) error {
	if slices.Contains(allowed, this.step) {
		return nil
	}
	return fmt.Errorf("%w: cannot %s during %s", ErrIllegalTransition, action, this.step)
}
