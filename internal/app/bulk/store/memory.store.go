package bulk_store

import (
	"context"
	"sync"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
)

type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]app.BulkJob
}

var _ app.JobStore = &MemoryJobStore{}

func NewMemory() *MemoryJobStore {
	return &MemoryJobStore{jobs: make(map[string]app.BulkJob)}
}

func (this *MemoryJobStore) Save(_ context.Context, job *app.BulkJob) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.jobs[job.ID] = *job
	return nil
}

func (this *MemoryJobStore) Get(_ context.Context, id string) (*app.BulkJob, error) {
	this.mu.RLock()
	defer this.mu.RUnlock()

	job, ok := this.jobs[id]
	if !ok {
		return nil, errs.NotFound("bulk job " + id)
	}
	return &job, nil
}
