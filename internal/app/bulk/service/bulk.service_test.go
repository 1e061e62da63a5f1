package bulk_service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	bulk_store "github.com/init-pkg/wrapped-reports/internal/app/bulk/store"
	ingest_service "github.com/init-pkg/wrapped-reports/internal/app/ingest/service"
	mapping_service "github.com/init-pkg/wrapped-reports/internal/app/mapping/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeGenerator struct {
	mu       sync.Mutex
	requests []*app.ReportRequest
	failFor  map[string]bool
	inFlight int
	maxSeen  int
	block    chan struct{}
}

func (this *fakeGenerator) Generate(ctx context.Context, req *app.ReportRequest) (*app.ReportResult, error) {
	this.mu.Lock()
	this.requests = append(this.requests, req)
	this.inFlight++
	this.maxSeen = max(this.maxSeen, this.inFlight)
	this.mu.Unlock()

	defer func() {
		this.mu.Lock()
		this.inFlight--
		this.mu.Unlock()
	}()

	if this.block != nil {
		select {
		case <-this.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if this.failFor[req.Customer.Name] {
		return nil, errs.New(errs.KindUpstream, "Failed to generate report", "429")
	}
	return &app.ReportResult{
		Report: "[]",
		Slides: []app.Slide{{Type: app.SlideIntro, Title: req.Customer.Name, Gradient: "g"}},
	}, nil
}

type recordingPublisher struct {
	mu    sync.Mutex
	names []string
	err   error
}

func (this *recordingPublisher) Publish(_ context.Context, r *app.GeneratedReport) error {
	this.mu.Lock()
	defer this.mu.Unlock()
	this.names = append(this.names, r.Customer.Name)
	return this.err
}

func newTestService(gen app.ReportGenerator, pub app.ReportPublisher, pacing time.Duration) *BulkService {
	return newService(pacing, gen, mapping_service.New(nil, discard), bulk_store.NewMemory(), pub, discard)
}

func rows(names ...string) []app.RawRow {
	out := []app.RawRow{}
	for _, n := range names {
		out = append(out, app.RawRow{"Name": n, "Visits": "3"})
	}
	return out
}

var mappings = []app.ColumnMapping{
	{OriginalName: "Name", MappedTo: app.MappedToName},
	{OriginalName: "Visits", MappedTo: app.MappedToMetadata},
}

func TestRunEndToEnd(t *testing.T) {
	csv := "Name,Email,Visits\nAnn Lee,ann@example.com,12\nBob,bob@example.com,7\nCara,cara@example.com,30\n"
	ingested, err := ingest_service.New(discard).Ingest(context.Background(), "customers.csv", []byte(csv))
	require.NoError(t, err)

	mapper := mapping_service.New(nil, discard)
	gen := &fakeGenerator{}
	svc := newTestService(gen, &recordingPublisher{}, 50*time.Millisecond)

	progress := []app.BulkProgress{}
	start := time.Now()
	res, err := svc.Run(context.Background(), &app.BulkInput{
		Rows:     ingested.Rows,
		Mappings: mapper.AutoMap(ingested.Columns),
		Business: app.Business{Name: "Acme", Type: "Gym"},
	}, func(p app.BulkProgress) { progress = append(progress, p) })

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	require.Len(t, res.Reports, 3)
	assert.Empty(t, res.Failures)
	assert.Equal(t, []app.BulkProgress{{Current: 1, Total: 3}, {Current: 2, Total: 3}, {Current: 3, Total: 3}}, progress)

	for i, want := range []string{"12", "7", "30"} {
		v, ok := res.Reports[i].Customer.Metadata.Get("Visits")
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, "ann@example.com", res.Reports[0].Customer.Email)
	assert.Equal(t, "Acme", gen.requests[0].Business.Name)
	assert.Equal(t, 1, gen.maxSeen)
}

func TestRunSkipsFailures(t *testing.T) {
	gen := &fakeGenerator{failFor: map[string]bool{"Bob": true}}
	pub := &recordingPublisher{err: errors.New("channel closed")}
	svc := newTestService(gen, pub, 0)

	res, err := svc.Run(context.Background(), &app.BulkInput{Rows: rows("Ann", "Bob", "Cara"), Mappings: mappings}, nil)

	require.NoError(t, err)
	require.Len(t, res.Reports, 2)
	assert.Equal(t, "Ann", res.Reports[0].Customer.Name)
	assert.Equal(t, "Cara", res.Reports[1].Customer.Name)
	assert.Equal(t, []app.BulkFailure{{Row: 1, Customer: "Bob", Reason: "Failed to generate report: 429"}}, res.Failures)
	assert.Equal(t, []string{"Ann", "Cara"}, pub.names)
}

func TestRunFallbackNames(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen, &recordingPublisher{}, 0)

	res, err := svc.Run(context.Background(), &app.BulkInput{
		Rows:     []app.RawRow{{"Name": ""}, {"Name": "  "}, {}},
		Mappings: mappings,
	}, nil)

	require.NoError(t, err)
	names := []string{}
	for _, r := range res.Reports {
		names = append(names, r.Customer.Name)
	}
	assert.Equal(t, []string{"Customer 1", "Customer 2", "Customer 3"}, names)
}

func TestRunCancelled(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen, &recordingPublisher{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := svc.Run(ctx, &app.BulkInput{Rows: rows("Ann", "Bob"), Mappings: mappings}, func(app.BulkProgress) { cancel() })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Reports, 1)
	assert.Len(t, gen.requests, 1)
}

func TestStartAndJob(t *testing.T) {
	svc := newTestService(&fakeGenerator{}, &recordingPublisher{}, 0)
	ctx := context.Background()

	job, err := svc.Start(ctx, &app.BulkInput{Rows: rows("Ann", "Bob"), Mappings: mappings})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, app.JobPending, job.Status)
	assert.Equal(t, 2, job.Progress.Total)

	require.Eventually(t, func() bool {
		got, err := svc.Job(ctx, job.ID)
		return err == nil && got.Status == app.JobCompleted
	}, 2*time.Second, 10*time.Millisecond)

	got, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, app.BulkProgress{Current: 2, Total: 2}, got.Progress)
	assert.Len(t, got.Reports, 2)
}

func TestStartValidation(t *testing.T) {
	svc := newTestService(&fakeGenerator{}, &recordingPublisher{}, 0)

	_, err := svc.Start(context.Background(), &app.BulkInput{})

	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, e.Status())
}

func TestJobMissing(t *testing.T) {
	svc := newTestService(&fakeGenerator{}, &recordingPublisher{}, 0)

	_, err := svc.Job(context.Background(), "missing")

	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, e.Status())
}

func TestShutdownCancelsJobs(t *testing.T) {
	gen := &fakeGenerator{block: make(chan struct{})}
	svc := newTestService(gen, &recordingPublisher{}, 0)
	ctx := context.Background()

	job, err := svc.Start(ctx, &app.BulkInput{Rows: rows("Ann", "Bob"), Mappings: mappings})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		gen.mu.Lock()
		defer gen.mu.Unlock()
		return len(gen.requests) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.Shutdown(ctx))

	got, err := svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, app.JobCancelled, got.Status)

	_, err = svc.Start(ctx, &app.BulkInput{Rows: rows("Cara"), Mappings: mappings})
	assert.Error(t, err)
}
