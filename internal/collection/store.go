// Package collection owns the canonical record set for one entity kind:
// refreshing it from upstream (with snapshot and sample fallbacks),
// handing copies to the view pipeline, and applying optimistic mutations
// from the verification workflow.
package collection

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/fallback"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/normalize"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/notify"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/storage"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/upstream"
)

// Source labels where the current collection came from, so the console can
// show a "using sample data" notice when it is not live.
type Source string

const (
	SourceNone   Source = ""
	SourceLive   Source = "live"
	SourceBackup Source = "backup"
	SourceSample Source = "sample"
	SourceGate   Source = "gate"
)

type Store struct {
	spec   records.KindSpec
	client *upstream.Client
	backup storage.Storage
	sink   notify.Sink
	logger *slog.Logger

	mu          sync.RWMutex
	items       []records.Record
	index       map[string]int
	source      Source
	refreshedAt time.Time
}

func New(spec records.KindSpec, client *upstream.Client, backup storage.Storage, sink notify.Sink, logger *slog.Logger) *Store {
	return &Store{
		spec:   spec,
		client: client,
		backup: backup,
		sink:   sink,
		logger: logger,
		index:  map[string]int{},
	}
}

// Refresh replaces the collection from upstream. When the owning view is
// inactive no network I/O happens at all; an empty store falls back to the
// sample dataset so there is always something to render. On upstream failure
// the snapshot backup is tried first, then the sample dataset. A full refresh
// is the only thing that ever removes records.
func (s *Store) Refresh(ctx context.Context, gate upstream.Gate) (Source, error) {
	if gate != nil && !gate.Active() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.items) == 0 {
			s.replaceLocked(fallback.Provide(s.spec.Kind), SourceGate)
		}
		return s.source, nil
	}

	resp, err := s.client.Get(ctx, s.spec.Path, nil)
	if err != nil {
		if ctx.Err() != nil {
			return s.Source(), ctx.Err()
		}
		return s.degrade("upstream unreachable", err), nil
	}
	if !resp.OK() {
		return s.degrade("upstream returned an error", nil), nil
	}

	raws, err := resp.Records()
	if err != nil || len(raws) == 0 {
		return s.degrade("upstream response unusable", err), nil
	}

	items := normalize.All(raws, s.spec.Kind)

	s.mu.Lock()
	s.replaceLocked(items, SourceLive)
	// the backup marshal runs unlocked; it must not share maps with the live
	// records a concurrent Apply may be mutating
	snapshot := records.CloneAll(s.items)
	s.mu.Unlock()

	s.writeBackup(ctx, snapshot)
	return SourceLive, nil
}

// degrade picks the best non-live source: snapshot backup, then samples.
func (s *Store) degrade(reason string, err error) Source {
	s.logger.Warn("collection refresh degraded",
		"kind", s.spec.Kind, "reason", reason, "err", err)

	if items, ok := s.readBackup(); ok {
		s.mu.Lock()
		s.replaceLocked(items, SourceBackup)
		s.mu.Unlock()
		s.sink.Notify(notify.LevelWarning, string(s.spec.Kind)+": live data unavailable, restored local backup")
		return SourceBackup
	}

	s.mu.Lock()
	s.replaceLocked(fallback.Provide(s.spec.Kind), SourceSample)
	s.mu.Unlock()
	s.sink.Notify(notify.LevelWarning, string(s.spec.Kind)+": live data unavailable, using sample data")
	return SourceSample
}

func (s *Store) replaceLocked(items []records.Record, src Source) {
	s.items = items
	s.index = make(map[string]int, len(items))
	for i, r := range items {
		s.index[r.ID] = i
	}
	s.source = src
	s.refreshedAt = time.Now()
}

// Items returns a deep copy of the collection.
func (s *Store) Items() []records.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return records.CloneAll(s.items)
}

func (s *Store) Get(id string) (records.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return records.Record{}, false
	}
	return s.items[i].Clone(), true
}

func (s *Store) Source() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Apply mutates one record in place (optimistic update path).
func (s *Store) Apply(id string, fn func(*records.Record)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	fn(&s.items[i])
	return true
}

// Reconcile overwrites the optimistic value with the server-confirmed one.
// Concurrent bulk completions land in arrival order, last write wins per id.
func (s *Store) Reconcile(id string, rec records.Record) {
	rec.WriteState = records.WriteCommitted
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return
	}
	// keep the id the rest of the collection is keyed by
	rec.ID = s.items[i].ID
	if rec.DisplayID == "" {
		rec.DisplayID = s.items[i].DisplayID
	}
	s.items[i] = rec
}

func (s *Store) MarkWriteFailed(id string) {
	s.Apply(id, func(r *records.Record) {
		r.WriteState = records.WriteFailed
	})
}

// StatusCounts aggregates the collection per status (report summaries fall
// back to this when the upstream summary endpoint is down).
func (s *Store) StatusCounts() map[records.Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[records.Status]int{}
	for _, r := range s.items {
		out[r.Status]++
	}
	return out
}

// --- snapshot backup (disaster-recovery read path, never authoritative) ---

func (s *Store) writeBackup(ctx context.Context, items []records.Record) {
	if s.backup == nil || s.spec.BackupKey == "" {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.backup.Put(ctx, s.spec.BackupKey, data); err != nil {
		s.logger.Warn("backup write failed", "kind", s.spec.Kind, "err", err)
		return
	}
	ts, _ := json.Marshal(time.Now().UTC().Format(time.RFC3339))
	_ = s.backup.Put(ctx, s.spec.BackupKey+"_timestamp", ts)
}

func (s *Store) readBackup() ([]records.Record, bool) {
	if s.backup == nil || s.spec.BackupKey == "" {
		return nil, false
	}
	data, err := s.backup.Get(context.Background(), s.spec.BackupKey)
	if err != nil {
		return nil, false
	}
	var items []records.Record
	if err := json.Unmarshal(data, &items); err != nil || len(items) == 0 {
		return nil, false
	}
	return items, true
}
