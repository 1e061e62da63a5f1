package app

import "context"

type IngestResult struct {
	Columns []string `json:"columns"`
	Rows    []RawRow `json:"rows"`
}

func (this *IngestResult) IsEmpty() bool {
	return this == nil || len(this.Columns) == 0
}

type Ingestor interface {
	Ingest(ctx context.Context, filename string, data []byte) (*IngestResult, error)
}
