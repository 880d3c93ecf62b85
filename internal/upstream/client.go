package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
)

// Response is the terminal outcome of a Do call. A non-2xx final response is
// handed back to the caller for inspection instead of being turned into an
// error; transport failures surface as errors.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) JSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// recordListKeys are the wrapper keys upstream endpoints are known to put
// their record array under, tried in order.
var recordListKeys = []string{"data", "items", "results", "records"}

// Records decodes the body as a list of raw records. Upstream endpoints are
// inconsistent: some return a bare array, others wrap it in an object
// ({"data": [...]}, {"sellers": [...]}). Well-known wrapper keys win over any
// other array value, so a sibling like "errors": [] never shadows the list.
func (r *Response) Records() ([]map[string]any, error) {
	var list []map[string]any
	if err := json.Unmarshal(r.Body, &list); err == nil {
		return list, nil
	}

	var wrapper map[string]any
	if err := json.Unmarshal(r.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("upstream: body is neither array nor object: %w", err)
	}
	for _, key := range recordListKeys {
		if arr, ok := wrapper[key].([]any); ok {
			return toRecords(arr), nil
		}
	}
	for _, v := range wrapper {
		if arr, ok := v.([]any); ok && len(arr) > 0 {
			return toRecords(arr), nil
		}
	}
	return nil, fmt.Errorf("upstream: no record array in response")
}

func toRecords(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Client issues upstream calls with retry and exponential backoff.
// Multiplier is 1.5, no jitter. Context cancellation aborts both in-flight
// attempts and backoff sleeps.
type Client struct {
	base           string
	httpc          *http.Client
	maxRetries     int
	baseDelay      time.Duration
	attemptTimeout time.Duration
	logger         *slog.Logger

	// sleep is swapped out in tests to record the backoff schedule.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		base:           strings.TrimRight(cfg.BaseURL, "/"),
		httpc:          &http.Client{},
		maxRetries:     cfg.MaxRetries,
		baseDelay:      cfg.BaseDelay,
		attemptTimeout: cfg.AttemptTimeout,
		logger:         logger,
		sleep:          sleepCtx,
	}
}

// WithSleep replaces the backoff sleeper (tests).
func (c *Client) WithSleep(fn func(ctx context.Context, d time.Duration) error) *Client {
	c.sleep = fn
	return c
}

// Do runs method path with up to maxRetries additional attempts. Both
// transport errors and non-2xx statuses are retried. After exhaustion the
// final transport error propagates; a final non-2xx response is returned so
// the caller can inspect the status.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("upstream: encode body: %w", err)
		}
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	delay := c.baseDelay
	var lastResp *Response
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay = time.Duration(float64(delay) * 1.5)
		}

		resp, err := c.attempt(ctx, method, u, payload)
		if err != nil {
			if ctx.Err() != nil {
				// view torn down / caller gone: stop retrying
				return nil, ctx.Err()
			}
			lastResp, lastErr = nil, err
			c.logger.Warn("upstream attempt failed",
				"method", method, "url", u, "attempt", attempt+1, "err", err)
			continue
		}
		if resp.OK() {
			return resp, nil
		}
		lastResp, lastErr = resp, nil
		c.logger.Warn("upstream non-2xx",
			"method", method, "url", u, "attempt", attempt+1, "status", resp.StatusCode)
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, url string, payload []byte) (*Response, error) {
	actx := ctx
	var cancel context.CancelFunc
	if c.attemptTimeout > 0 {
		actx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, method, url, rd)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: res.StatusCode, Body: b}, nil
}

// Convenience verbs over Do.

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
