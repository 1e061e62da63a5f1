package ingest_service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
)

type IngestService struct {
	log *slog.Logger
}

var _ app.Ingestor = &IngestService{}

func New(log *slog.Logger) *IngestService {
	return &IngestService{log}
}

// Ingest parses an uploaded file chosen by extension. Unreadable content is
// not an error: it yields an empty result.
func (this *IngestService) Ingest(ctx context.Context, filename string, data []byte) (*app.IngestResult, error) {
	var (
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
		res *app.IngestResult
		err error
	)

	switch ext {
	case "csv":
		res, err = readCSV(data)
	case "xlsx", "xls":
		res, err = readSpreadsheet(data)
	default:
		return nil, errs.Validation(fmt.Errorf("%w: %q", errs.ErrUnsupportedFormat, filename))
	}

	if err != nil {
		this.log.Warn("unreadable upload, continuing with empty data", "file", filename, "error", err)
		return empty(), nil
	}

	this.log.Info("upload ingested", "file", filename, "columns", len(res.Columns), "rows", len(res.Rows))
	return res, nil
}

func empty() *app.IngestResult {
	return &app.IngestResult{Columns: []string{}, Rows: []app.RawRow{}}
}
