package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mlanger/zeiterfassung/internal/domain"
)

// RecordKey is the single backend key under which the whole record lives.
const RecordKey = "zeiterfassung"

// Store persists the versioned record through a Backend. Reads degrade to
// the default record on missing or corrupt data; only Save fails loudly.
type Store struct {
	backend Backend
	logger  *log.Logger
}

func NewStore(backend Backend, logger *log.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// Load reads the persisted record. An absent key, an unparsable blob, or an
// unsupported schema version all yield the default empty record with a
// logged warning; the error return covers backend read failures only.
func (s *Store) Load(ctx context.Context) (domain.Record, error) {
	raw, ok, err := s.backend.Get(ctx, RecordKey)
	if err != nil {
		return domain.Record{}, fmt.Errorf("loading record: %w", err)
	}
	if !ok {
		return domain.DefaultRecord(), nil
	}

	var rec domain.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Warn("persisted record is unparsable, starting fresh", "err", err)
		return domain.DefaultRecord(), nil
	}
	if rec.Version != domain.CurrentVersion {
		s.logger.Warn("persisted record has unsupported version, starting fresh",
			"version", rec.Version)
		return domain.DefaultRecord(), nil
	}
	if rec.Sessions == nil {
		rec.Sessions = []domain.Session{}
	}
	return rec, nil
}

// Save serializes and writes the whole record. Backend failures wrap
// ErrStorageFailure; the backend contract guarantees the prior value stays
// intact on failure.
func (s *Store) Save(ctx context.Context, rec domain.Record) error {
	rec.Version = domain.CurrentVersion
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := s.backend.Set(ctx, RecordKey, string(raw)); err != nil {
		return fmt.Errorf("saving record: %w: %v", ErrStorageFailure, err)
	}
	return nil
}
