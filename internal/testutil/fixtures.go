package testutil

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/ledger"
	"github.com/mlanger/zeiterfassung/internal/storage"
)

// Zone is a fixed offset used by tests so local-date bucketing does not
// depend on the machine's timezone.
var Zone = time.FixedZone("UTC+2", 2*60*60)

// SessionOption mutates a test session.
type SessionOption func(*domain.Session)

func WithID(id string) SessionOption {
	return func(s *domain.Session) { s.ID = id }
}

func WithNotes(notes string) SessionOption {
	return func(s *domain.Session) { s.Notes = notes }
}

func WithEnd(end time.Time) SessionOption {
	return func(s *domain.Session) {
		e := end.UTC()
		s.EndUTC = &e
	}
}

// Open drops the end instant, leaving the session incomplete.
func Open() SessionOption {
	return func(s *domain.Session) { s.EndUTC = nil }
}

// NewSession builds a completed test session starting at the given instant
// with the given duration in minutes.
func NewSession(start time.Time, minutes int, opts ...SessionOption) domain.Session {
	end := start.UTC().Add(time.Duration(minutes) * time.Minute)
	s := domain.Session{
		ID:       uuid.New().String(),
		StartUTC: start.UTC(),
		EndUTC:   &end,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// QuietLogger returns a logger that discards everything.
func QuietLogger() *log.Logger {
	return log.New(io.Discard)
}

// NewLedger wires a Ledger over a fresh in-memory backend.
func NewLedger(t *testing.T) (*ledger.Ledger, *MemoryBackend) {
	t.Helper()
	backend := NewMemoryBackend()
	store := storage.NewStore(backend, QuietLogger())
	return ledger.New(store), backend
}
