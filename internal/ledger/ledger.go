package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/storage"
)

// ErrNotFound marks an update whose target session id does not exist.
var ErrNotFound = errors.New("not found")

// Ledger provides session CRUD over the Store. Every mutation reads the
// full record, changes it in memory, and writes it back as a unit
// (last-writer-wins, no partial updates).
type Ledger struct {
	store *storage.Store
}

func New(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Add appends a session and saves. An empty id gets a fresh uuid; no
// duplicate-id check is performed.
func (l *Ledger) Add(ctx context.Context, s domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.StartUTC = s.StartUTC.UTC()
	if s.EndUTC != nil {
		end := s.EndUTC.UTC()
		s.EndUTC = &end
	}

	rec, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	rec.Sessions = append(rec.Sessions, s)
	return l.store.Save(ctx, rec)
}

// Update merges the patch into the session with the given id. A missing id
// fails with ErrNotFound and leaves the persisted record untouched.
func (l *Ledger) Update(ctx context.Context, id string, patch domain.SessionPatch) error {
	rec, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	for i, s := range rec.Sessions {
		if s.ID == id {
			rec.Sessions[i] = patch.Apply(s)
			return l.store.Save(ctx, rec)
		}
	}
	return fmt.Errorf("session %s: %w", id, ErrNotFound)
}

// Remove drops the session with the given id. Removing an unknown id is a
// no-op, not an error.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	rec, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	kept := rec.Sessions[:0]
	for _, s := range rec.Sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	rec.Sessions = kept
	return l.store.Save(ctx, rec)
}

// List returns a snapshot of the current session sequence.
func (l *Ledger) List(ctx context.Context) ([]domain.Session, error) {
	rec, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Session, len(rec.Sessions))
	copy(out, rec.Sessions)
	return out, nil
}

// UserName returns the stored display name, which may be empty.
func (l *Ledger) UserName(ctx context.Context) (string, error) {
	rec, err := l.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return rec.UserName, nil
}

// SetUserName stores the display name with the same read-modify-write
// discipline as the session mutations.
func (l *Ledger) SetUserName(ctx context.Context, name string) error {
	rec, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	rec.UserName = name
	return l.store.Save(ctx, rec)
}
