package bulk_http_handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/dtos"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/init-pkg/wrapped-reports/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	started *app.BulkInput
	jobs    map[string]*app.BulkJob
}

func (this *fakeOrchestrator) Run(context.Context, *app.BulkInput, func(app.BulkProgress)) (*app.BulkResult, error) {
	return nil, nil
}

func (this *fakeOrchestrator) Start(_ context.Context, in *app.BulkInput) (*app.BulkJob, error) {
	this.started = in
	return &app.BulkJob{ID: "job-7", Status: app.JobPending}, nil
}

func (this *fakeOrchestrator) Job(_ context.Context, id string) (*app.BulkJob, error) {
	if job, ok := this.jobs[id]; ok {
		return job, nil
	}
	return nil, errs.NotFound("bulk job " + id)
}

func newTestApp(o app.BulkOrchestrator) *fiber.App {
	a := server.New(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	New(o).Register(a)
	return a
}

func TestStart(t *testing.T) {
	o := &fakeOrchestrator{}
	a := newTestApp(o)

	req := httptest.NewRequest(http.MethodPost, "/api/bulk", strings.NewReader(`{
		"rows": [{"Name": "Ann", "Visits": 3}],
		"mappings": [{"originalName": "Name", "mappedTo": "name"}, {"originalName": "Visits", "mappedTo": "metadata"}],
		"businessName": "Acme", "businessType": "Gym"
	}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := a.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusAccepted, res.StatusCode)
	var body dtos.BulkStartedResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "job-7", body.JobId)

	require.NotNil(t, o.started)
	assert.Equal(t, "Acme", o.started.Business.Name)
	assert.Len(t, o.started.Mappings, 2)
}

func TestStartBadMappings(t *testing.T) {
	a := newTestApp(&fakeOrchestrator{})

	req := httptest.NewRequest(http.MethodPost, "/api/bulk", strings.NewReader(`{
		"rows": [{"Name": "Ann"}],
		"mappings": [{"originalName": "Name", "mappedTo": "nickname"}]
	}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := a.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJob(t *testing.T) {
	a := newTestApp(&fakeOrchestrator{jobs: map[string]*app.BulkJob{
		"job-7": {ID: "job-7", Status: app.JobRunning, Progress: app.BulkProgress{Current: 1, Total: 3}},
	}})

	res, err := a.Test(httptest.NewRequest(http.MethodGet, "/api/bulk/job-7", nil))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var job app.BulkJob
	require.NoError(t, json.NewDecoder(res.Body).Decode(&job))
	assert.Equal(t, app.JobRunning, job.Status)
	assert.Equal(t, app.BulkProgress{Current: 1, Total: 3}, job.Progress)

	res, err = a.Test(httptest.NewRequest(http.MethodGet, "/api/bulk/nope", nil))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
