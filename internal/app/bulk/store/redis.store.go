package bulk_store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/init-pkg/wrapped-reports/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisJobStore keeps each job as one JSON value that expires after ttl.
type RedisJobStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ app.JobStore = &RedisJobStore{}

func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *RedisJobStore {
	return &RedisJobStore{client, prefix, ttl}
}

// New picks the redis store when a client is configured.
func New(cfg *config.Config, client *redis.Client) app.JobStore {
	if client == nil {
		return NewMemory()
	}
	return NewRedis(client, cfg.Infrastructure.Redis.Prefix, cfg.Bulk.JobTTL)
}

func (this *RedisJobStore) Save(ctx context.Context, job *app.BulkJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	if err := this.client.Set(ctx, this.prefix+job.ID, data, this.ttl).Err(); err != nil {
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	return nil
}

func (this *RedisJobStore) Get(ctx context.Context, id string) (*app.BulkJob, error) {
	data, err := this.client.Get(ctx, this.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NotFound("bulk job " + id)
	}
	if err != nil {
		return nil, fmt.Errorf("load job %s: %w", id, err)
	}

	var job app.BulkJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", id, err)
	}
	return &job, nil
}
