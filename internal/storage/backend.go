package storage

import (
	"context"
	"errors"
)

// ErrStorageFailure marks a rejected backend write (for example quota or
// disk errors). Save is the one operation allowed to fail loudly, so callers
// must surface this to the user.
var ErrStorageFailure = errors.New("storage failure")

// Backend is a synchronous string key/value store. Get reports ok=false for
// an absent key; Set must be all-or-nothing so that a failed write leaves
// the previous value intact.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
