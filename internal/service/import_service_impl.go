package service

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mlanger/zeiterfassung/internal/csvio"
	"github.com/mlanger/zeiterfassung/internal/ledger"
)

type importService struct {
	ledger *ledger.Ledger
	logger *log.Logger
}

func NewImportService(l *ledger.Ledger, logger *log.Logger) ImportService {
	return &importService{ledger: l, logger: logger}
}

// ImportCSV decodes the text and persists each well-formed row through a
// separate Ledger.Add. There is no batching transaction: rows added before
// a failing save stay persisted, and the error carries the partial count.
func (s *importService) ImportCSV(ctx context.Context, text string) (ImportResult, error) {
	sessions, skipped := csvio.Decode(text)
	if skipped > 0 {
		s.logger.Warn("skipped malformed csv rows", "count", skipped)
	}

	res := ImportResult{Skipped: skipped}
	for _, sess := range sessions {
		if err := s.ledger.Add(ctx, sess); err != nil {
			return res, fmt.Errorf("importing after %d rows: %w", res.Imported, err)
		}
		res.Imported++
	}
	return res, nil
}
