package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string, maxRetries int, baseDelay time.Duration) (*Client, *[]time.Duration) {
	delays := &[]time.Duration{}
	c := NewClient(config.UpstreamConfig{
		BaseURL:        baseURL,
		MaxRetries:     maxRetries,
		BaseDelay:      baseDelay,
		AttemptTimeout: 5 * time.Second,
	}, testLogger())
	c.WithSleep(func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	})
	return c, delays
}

func TestDoRetriesThenSucceeds(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&attempts, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, delays := newTestClient(srv.URL, 3, 1000*time.Millisecond)
	resp, err := c.Get(context.Background(), "/sellers", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("want 2xx, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("want 3 attempts, got %d", got)
	}
	want := []time.Duration{1000 * time.Millisecond, 1500 * time.Millisecond}
	if len(*delays) != len(want) {
		t.Fatalf("want %d delays, got %v", len(want), *delays)
	}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Errorf("delay[%d]: want %v, got %v", i, d, (*delays)[i])
		}
	}
}

func TestDoReturnsFinalNon2xxAfterExhaustion(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, delays := newTestClient(srv.URL, 2, 1000*time.Millisecond)
	resp, err := c.Get(context.Background(), "/sellers", nil)
	if err != nil {
		t.Fatalf("final non-2xx must not be an error, got %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want final 500 handed back, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("maxRetries=2 means 3 attempts, got %d", got)
	}
	want := []time.Duration{1000 * time.Millisecond, 1500 * time.Millisecond}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Errorf("delay[%d]: want %v, got %v", i, d, (*delays)[i])
		}
	}
}

func TestDoPropagatesFinalTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c, _ := newTestClient(srv.URL, 1, time.Millisecond)
	resp, err := c.Get(context.Background(), "/sellers", nil)
	if err == nil {
		t.Fatalf("want transport error, got resp %+v", resp)
	}
	if resp != nil {
		t.Fatalf("want nil response on transport failure, got %+v", resp)
	}
}

func TestDoStopsOnContextCancel(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(config.UpstreamConfig{
		BaseURL:    srv.URL,
		MaxRetries: 5,
		BaseDelay:  time.Millisecond,
	}, testLogger())
	c.WithSleep(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	})

	_, err := c.Get(ctx, "/sellers", nil)
	if err == nil {
		t.Fatal("want cancellation error")
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Fatalf("cancelled during first backoff, want 1 attempt, got %d", got)
	}
}

func TestResponseRecordsAcceptsArrayAndWrapper(t *testing.T) {
	bare := &Response{StatusCode: 200, Body: []byte(`[{"_id":"a"},{"_id":"b"}]`)}
	got, err := bare.Records()
	if err != nil || len(got) != 2 {
		t.Fatalf("bare array: got %v, %v", got, err)
	}

	wrapped := &Response{StatusCode: 200, Body: []byte(`{"success":true,"data":[{"_id":"c"}]}`)}
	got, err = wrapped.Records()
	if err != nil || len(got) != 1 || got[0]["_id"] != "c" {
		t.Fatalf("wrapped array: got %v, %v", got, err)
	}

	junk := &Response{StatusCode: 200, Body: []byte(`not json`)}
	if _, err := junk.Records(); err == nil {
		t.Fatal("want error for malformed body")
	}
}

func TestResponseRecordsPrefersKnownKeysOverSiblingArrays(t *testing.T) {
	// "errors" would win under plain map iteration often enough to flake;
	// the data key must always be chosen
	for i := 0; i < 50; i++ {
		resp := &Response{StatusCode: 200, Body: []byte(`{"errors":[],"data":[{"_id":"a"},{"_id":"b"}]}`)}
		got, err := resp.Records()
		if err != nil || len(got) != 2 {
			t.Fatalf("run %d: got %v, %v", i, got, err)
		}
	}

	// an empty well-known key is an empty list, not a fallthrough
	empty := &Response{StatusCode: 200, Body: []byte(`{"data":[],"warnings":[{"msg":"x"}]}`)}
	got, err := empty.Records()
	if err != nil || len(got) != 0 {
		t.Fatalf("empty data key: got %v, %v", got, err)
	}

	// unknown collection-name keys still work via the non-empty fallback
	named := &Response{StatusCode: 200, Body: []byte(`{"success":true,"sellers":[{"_id":"s-1"}],"errors":[]}`)}
	got, err = named.Records()
	if err != nil || len(got) != 1 || got[0]["_id"] != "s-1" {
		t.Fatalf("named key: got %v, %v", got, err)
	}
}
