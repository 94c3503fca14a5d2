package service

import (
	"context"
	"time"
)

// ImportResult reports the outcome of a CSV import: rows persisted and
// malformed rows dropped. Skips are counted, never itemized.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ExportResult carries the rendered CSV text and its dated filename.
type ExportResult struct {
	Filename string
	Content  string
}

type ImportService interface {
	ImportCSV(ctx context.Context, text string) (ImportResult, error)
}

type ExportService interface {
	Export(ctx context.Context) (ExportResult, error)
}

type ReportService interface {
	MonthlyTimesheet(ctx context.Context, year int, month time.Month) (*Timesheet, error)
}
