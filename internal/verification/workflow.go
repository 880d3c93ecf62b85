// Package verification drives the approval/rejection/inspection lifecycle.
// Updates are optimistic: local canonical state changes first, the upstream
// write follows, and the server echo overwrites the optimistic value on
// success. A failed write is never rolled back silently; the record is marked
// write_failed and the operator is notified.
package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/collection"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/normalize"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/notify"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/upstream"
)

type Workflow struct {
	spec   records.KindSpec
	store  *collection.Store
	client *upstream.Client
	events *EventLog
	sink   notify.Sink
	logger *slog.Logger
	fanout int
}

func New(spec records.KindSpec, store *collection.Store, client *upstream.Client, events *EventLog, sink notify.Sink, logger *slog.Logger, fanout int) *Workflow {
	if fanout < 1 {
		fanout = 1
	}
	return &Workflow{
		spec:   spec,
		store:  store,
		client: client,
		events: events,
		sink:   sink,
		logger: logger,
		fanout: fanout,
	}
}

type TransitionInput struct {
	ID          string
	ActorUserID string
	Action      string
	Note        string
}

// Transition runs one verification action. It returns an error only when the
// action cannot even be applied locally (unknown id, invalid transition);
// upstream write failures surface as notifications plus write_failed state,
// never as errors across this boundary.
func (w *Workflow) Transition(ctx context.Context, in TransitionInput) error {
	if in.ID == "" || in.Action == "" {
		return ErrNotActionable
	}

	rec, ok := w.store.Get(in.ID)
	if !ok {
		return ErrNotActionable
	}

	to, err := nextStatus(w.spec, rec.Status, in.Action)
	if err != nil {
		return err
	}

	from := rec.Status
	w.applyOptimistic(in.ID, to, in.Note)

	outcome := w.write(ctx, in.ID, to, in.Note)
	w.events.Record(ctx, VerificationEvent{
		Kind:        string(w.spec.Kind),
		RecordID:    in.ID,
		ActorUserID: in.ActorUserID,
		Action:      in.Action,
		FromStatus:  string(from),
		ToStatus:    string(to),
		Note:        notePtr(in.Note),
		Outcome:     outcome,
	})

	if outcome == outcomeConfirmed {
		w.sink.Notify(notify.LevelSuccess,
			fmt.Sprintf("%s %s: %s", w.spec.Kind, in.ID, in.Action))
	} else {
		w.sink.Notify(notify.LevelError,
			fmt.Sprintf("%s %s: %s succeeded locally only, server update failed", w.spec.Kind, in.ID, in.Action))
	}
	return nil
}

type BulkOutcome string

const (
	BulkConfirmed BulkOutcome = "confirmed"
	BulkLocalOnly BulkOutcome = "local_only"
	BulkInvalid   BulkOutcome = "invalid"
	BulkNotFound  BulkOutcome = "not_found"
)

type BulkResult struct {
	Results   map[string]BulkOutcome
	Confirmed int
	Failed    int
}

// BulkTransition applies the optimistic pass to every id synchronously, then
// issues upstream writes through a bounded executor. Best-effort and
// non-atomic: some ids end up server-confirmed, others locally optimistic.
func (w *Workflow) BulkTransition(ctx context.Context, ids []string, action, actor string) BulkResult {
	res := BulkResult{Results: make(map[string]BulkOutcome, len(ids))}

	// optimistic pass, one entry per distinct id
	var eligible []string
	froms := map[string]records.Status{}
	for _, id := range ids {
		if _, seen := res.Results[id]; seen {
			continue
		}
		rec, ok := w.store.Get(id)
		if !ok {
			res.Results[id] = BulkNotFound
			continue
		}
		to, err := nextStatus(w.spec, rec.Status, action)
		if err != nil {
			res.Results[id] = BulkInvalid
			continue
		}
		froms[id] = rec.Status
		w.applyOptimistic(id, to, "")
		eligible = append(eligible, id)
	}

	// bounded fan-out; completions land in arrival order, last write wins
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, w.fanout)
	)
	for _, id := range eligible {
		rec, _ := w.store.Get(id)
		to := rec.Status

		wg.Add(1)
		sem <- struct{}{}
		go func(id string, from records.Status, to records.Status) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome := w.write(ctx, id, to, "")
			w.events.Record(ctx, VerificationEvent{
				Kind:        string(w.spec.Kind),
				RecordID:    id,
				ActorUserID: actor,
				Action:      action,
				FromStatus:  string(from),
				ToStatus:    string(to),
				Outcome:     outcome,
			})

			mu.Lock()
			if outcome == outcomeConfirmed {
				res.Results[id] = BulkConfirmed
			} else {
				res.Results[id] = BulkLocalOnly
			}
			mu.Unlock()
		}(id, froms[id], to)
	}
	wg.Wait()

	for _, oc := range res.Results {
		switch oc {
		case BulkConfirmed:
			res.Confirmed++
		case BulkLocalOnly, BulkInvalid, BulkNotFound:
			res.Failed++
		}
	}

	level := notify.LevelSuccess
	if res.Failed > 0 {
		level = notify.LevelWarning
	}
	w.sink.Notify(level, fmt.Sprintf("bulk %s on %s: %d confirmed, %d failed",
		action, w.spec.Kind, res.Confirmed, res.Failed))
	return res
}

const (
	outcomeConfirmed = "confirmed"
	outcomeLocalOnly = "local_only"
)

func (w *Workflow) applyOptimistic(id string, to records.Status, note string) {
	w.store.Apply(id, func(r *records.Record) {
		r.Status = to
		r.WriteState = records.WritePending
		if n := strings.TrimSpace(note); n != "" {
			r.Notes = n
		}
	})
}

// write pushes the transition upstream and reconciles the echo. Sellers use
// the /{id}/verify sub-resource, everything else a direct PUT carrying
// isVerified/status fields.
func (w *Workflow) write(ctx context.Context, id string, to records.Status, note string) string {
	path := w.spec.Path + "/" + id
	if w.spec.WriteStyle == records.WriteVerifySubresource {
		path += "/verify"
	}

	resp, err := w.client.Put(ctx, path, w.payload(to, note))
	if err != nil || !resp.OK() {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		w.logger.Warn("verification write failed",
			"kind", w.spec.Kind, "id", id, "status", status, "err", err)
		w.store.MarkWriteFailed(id)
		return outcomeLocalOnly
	}

	var echo map[string]any
	if err := resp.JSON(&echo); err == nil && len(echo) > 0 {
		if data, ok := echo["data"].(map[string]any); ok {
			echo = data
		}
		w.store.Reconcile(id, normalize.Record(echo, w.spec.Kind))
	} else {
		// server confirmed but sent nothing usable back: commit the
		// optimistic value as-is
		w.store.Apply(id, func(r *records.Record) {
			r.WriteState = records.WriteCommitted
		})
	}
	return outcomeConfirmed
}

func (w *Workflow) payload(to records.Status, note string) map[string]any {
	body := map[string]any{"status": string(to)}
	switch w.spec.Kind {
	case records.KindSeller, records.KindHotel:
		body["isVerified"] = to == records.StatusApproved
		if to == records.StatusRejected {
			body["verificationRejected"] = true
		}
		if n := strings.TrimSpace(note); n != "" {
			body["verificationNotes"] = n
		}
	default:
		if n := strings.TrimSpace(note); n != "" {
			body["notes"] = n
		}
	}
	return body
}

func notePtr(s string) *string {
	if n := strings.TrimSpace(s); n != "" {
		return &n
	}
	return nil
}
