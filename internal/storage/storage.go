package storage

import (
	"context"
	"errors"
)

// ErrNotFound: no snapshot has been written under the key yet.
var ErrNotFound = errors.New("storage: key not found")

// Storage keeps small JSON snapshots under fixed, caller-chosen keys.
// Used as a disaster-recovery read path for collection backups; never
// authoritative.
type Storage interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
