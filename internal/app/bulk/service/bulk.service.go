package bulk_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"go.uber.org/fx"
)

type BulkService struct {
	reports   app.ReportGenerator
	mapper    app.ColumnMapper
	store     app.JobStore
	publisher app.ReportPublisher
	log       *slog.Logger
	pacing    time.Duration

	// jobs outlive the request that started them
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

var _ app.BulkOrchestrator = &BulkService{}

func New(
	lc fx.Lifecycle,
	cfg *config.Config,
	reports app.ReportGenerator,
	mapper app.ColumnMapper,
	store app.JobStore,
	publisher app.ReportPublisher,
	log *slog.Logger,
) *BulkService {
	var s = newService(cfg.Bulk.Pacing, reports, mapper, store, publisher, log)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
	return s
}

func newService(
	pacing time.Duration,
	reports app.ReportGenerator,
	mapper app.ColumnMapper,
	store app.JobStore,
	publisher app.ReportPublisher,
	log *slog.Logger,
) *BulkService {
	ctx, cancel := context.WithCancel(context.Background())
	return &BulkService{
		reports:   reports,
		mapper:    mapper,
		store:     store,
		publisher: publisher,
		log:       log,
		pacing:    pacing,
		baseCtx:   ctx,
		cancel:    cancel,
	}
}

// Run generates a report for every row, one request at a time. A failed row
// is recorded and skipped. Progress is reported after each row, and every
// row is followed by the pacing delay. Cancelling ctx stops the run between
// rows and returns what was generated so far together with the ctx error.
func (this *BulkService) Run(ctx context.Context, in *app.BulkInput, onProgress func(app.BulkProgress)) (*app.BulkResult, error) {
	var total = len(in.Rows)
	var result = &app.BulkResult{
		Reports:  []app.GeneratedReport{},
		Failures: []app.BulkFailure{},
	}

	for i, row := range in.Rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var customer = this.mapper.BuildCustomer(row, in.Mappings, fmt.Sprintf("Customer %d", i+1))

		res, err := this.reports.Generate(ctx, &app.ReportRequest{
			Customer:  customer,
			Business:  in.Business,
			Theme:     in.Theme,
			ThemeName: in.ThemeName,
		})
		if err != nil {
			this.log.Error("bulk row failed", "row", i+1, "customer", customer.Name, "error", err)
			result.Failures = append(result.Failures, app.BulkFailure{Row: i, Customer: customer.Name, Reason: err.Error()})
		} else {
			var report = app.GeneratedReport{Customer: customer, Report: res.Report, Slides: res.Slides}
			result.Reports = append(result.Reports, report)

			if err := this.publisher.Publish(ctx, &report); err != nil {
				this.log.Warn("report publish failed", "customer", customer.Name, "error", err)
			}
		}

		if onProgress != nil {
			onProgress(app.BulkProgress{Current: i + 1, Total: total})
		}

		if err := this.pause(ctx); err != nil {
			return result, err
		}
	}

	this.log.Info("bulk run finished", "reports", len(result.Reports), "failures", len(result.Failures))
	return result, nil
}

// Start runs the bulk generation in the background and returns the job
// that tracks it.
func (this *BulkService) Start(ctx context.Context, in *app.BulkInput) (*app.BulkJob, error) {
	if len(in.Rows) == 0 {
		return nil, errs.Validation(errors.New("no rows to generate"))
	}
	if err := this.baseCtx.Err(); err != nil {
		return nil, errs.Wrap(err, &errs.Opts{Kind: errs.KindInternal, Message: "Service is shutting down"})
	}

	var now = time.Now().UTC()
	var job = &app.BulkJob{
		ID:        uuid.NewString(),
		Status:    app.JobPending,
		Progress:  app.BulkProgress{Current: 0, Total: len(in.Rows)},
		Reports:   []app.GeneratedReport{},
		Failures:  []app.BulkFailure{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := this.store.Save(ctx, job); err != nil {
		return nil, errs.Wrap(err, &errs.Opts{Kind: errs.KindInternal, Message: "Failed to start bulk generation"})
	}

	var snapshot = *job
	this.wg.Add(1)
	go func() {
		defer this.wg.Done()
		this.runJob(job, in)
	}()

	return &snapshot, nil
}

func (this *BulkService) Job(ctx context.Context, id string) (*app.BulkJob, error) {
	return this.store.Get(ctx, id)
}

// Shutdown cancels running jobs and waits for them to record their state.
func (this *BulkService) Shutdown(ctx context.Context) error {
	this.cancel()

	var done = make(chan struct{})
	go func() {
		this.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (this *BulkService) runJob(job *app.BulkJob, in *app.BulkInput) {
	var ctx = this.baseCtx
	var log = this.log.With("job", job.ID)

	job.Status = app.JobRunning
	this.save(job, log)

	res, err := this.Run(ctx, in, func(p app.BulkProgress) {
		job.Progress = p
		this.save(job, log)
	})

	job.Reports = res.Reports
	job.Failures = res.Failures
	job.Status = app.JobCompleted
	if err != nil {
		job.Status = app.JobCancelled
		log.Warn("bulk job cancelled", "error", err)
	}
	this.save(job, log)
}

func (this *BulkService) save(job *app.BulkJob, log *slog.Logger) {
	job.UpdatedAt = time.Now().UTC()

	// the base ctx may already be cancelled; the final state must still land
	ctx, cancel := context.WithTimeout(context.WithoutCancel(this.baseCtx), 5*time.Second)
	defer cancel()

	if err := this.store.Save(ctx, job); err != nil {
		log.Error("bulk job save failed", "error", err)
	}
}

func (this *BulkService) pause(ctx context.Context) error {
	if this.pacing <= 0 {
		return ctx.Err()
	}

	var t = time.NewTimer(this.pacing)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
