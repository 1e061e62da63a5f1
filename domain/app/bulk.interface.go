package app

import (
	"context"
	"time"
)

type BulkInput struct {
	Rows      []RawRow
	Mappings  []ColumnMapping
	Business  Business
	Theme     *Theme
	ThemeName string
}

type BulkProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type BulkFailure struct {
	Row      int    `json:"row"`
	Customer string `json:"customer"`
	Reason   string `json:"reason"`
}

type BulkResult struct {
	Reports  []GeneratedReport `json:"reports"`
	Failures []BulkFailure     `json:"failures"`
}

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

type BulkJob struct {
	ID        string            `json:"id"`
	Status    JobStatus         `json:"status"`
	Progress  BulkProgress      `json:"progress"`
	Reports   []GeneratedReport `json:"reports"`
	Failures  []BulkFailure     `json:"failures"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type BulkOrchestrator interface {
	Run(ctx context.Context, in *BulkInput, onProgress func(BulkProgress)) (*BulkResult, error)
	Start(ctx context.Context, in *BulkInput) (*BulkJob, error)
	Job(ctx context.Context, id string) (*BulkJob, error)
}

type JobStore interface {
	Save(ctx context.Context, job *BulkJob) error
	Get(ctx context.Context, id string) (*BulkJob, error)
}

type ReportPublisher interface {
	Publish(ctx context.Context, report *GeneratedReport) error
}
