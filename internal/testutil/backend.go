package testutil

import (
	"context"
	"errors"
	"sync"
)

// MemoryBackend is an in-memory storage.Backend for tests.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}

// Put seeds a raw value, bypassing the store, for corruption tests.
func (b *MemoryBackend) Put(key, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
}

// Raw returns the stored value for assertions against the persisted blob.
func (b *MemoryBackend) Raw(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok
}

// FailingBackend wraps a MemoryBackend and rejects writes once FailWrites
// is set, simulating a full or broken device while keeping prior values
// readable.
type FailingBackend struct {
	*MemoryBackend
	FailWrites bool
}

func NewFailingBackend() *FailingBackend {
	return &FailingBackend{MemoryBackend: NewMemoryBackend()}
}

func (b *FailingBackend) Set(ctx context.Context, key, value string) error {
	if b.FailWrites {
		return errors.New("backend capacity exceeded")
	}
	return b.MemoryBackend.Set(ctx, key, value)
}
