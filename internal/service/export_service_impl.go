package service

import (
	"context"
	"time"

	"github.com/mlanger/zeiterfassung/internal/csvio"
	"github.com/mlanger/zeiterfassung/internal/ledger"
)

type exportService struct {
	ledger *ledger.Ledger
	loc    *time.Location
	now    func() time.Time
}

func NewExportService(l *ledger.Ledger, loc *time.Location) ExportService {
	return &exportService{ledger: l, loc: loc, now: time.Now}
}

func (s *exportService) Export(ctx context.Context) (ExportResult, error) {
	sessions, err := s.ledger.List(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Filename: csvio.ExportFilename(s.now(), s.loc),
		Content:  csvio.Encode(sessions),
	}, nil
}
