package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Put(ctx context.Context, key string, data []byte) error {
	_ = ctx

	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.path(key), data, 0o644)
}

func (l *Local) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	b, err := os.ReadFile(l.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	err := os.Remove(l.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (l *Local) path(key string) string {
	// keys are fixed strings we own, but keep them inside BaseDir anyway
	return filepath.Join(l.BaseDir, filepath.Base(key)+".json")
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
