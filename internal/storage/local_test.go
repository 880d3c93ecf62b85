package storage

import (
	"context"
	"errors"
	"testing"
)

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := NewLocal(t.TempDir())

	key := "freshconnect_sellers_backup"
	if _, err := l.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound before put, got %v", err)
	}

	if err := l.Put(ctx, key, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := l.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("round trip mismatch: %s", got)
	}

	if err := l.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := l.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}

	// deleting a missing key is not an error
	if err := l.Delete(ctx, key); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
