package records

import "time"

type Kind string

const (
	KindSeller    Kind = "seller"
	KindHotel     Kind = "hotel"
	KindComplaint Kind = "complaint"
	KindPayment   Kind = "payment"
	KindReport    Kind = "report"
)

type Status string

const (
	// Verification lifecycle (sellers, hotels, payments)
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"

	// Complaint lifecycle
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// WriteState tracks whether a record's local status is server-confirmed.
type WriteState string

const (
	WriteCommitted WriteState = "committed"
	WritePending   WriteState = "pending_write"
	WriteFailed    WriteState = "write_failed"
)

// Record is the canonical shape every raw backend record is normalized into.
// Filtering, sorting and rendering only ever see this.
type Record struct {
	ID         string         `json:"id"`
	DisplayID  string         `json:"display_id"`
	Kind       Kind           `json:"kind"`
	Status     Status         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	Notes      string         `json:"notes,omitempty"`
	WriteState WriteState     `json:"write_state"`
	Fields     map[string]any `json:"fields"`
}

// Clone returns a value copy with its own Fields map.
func (r Record) Clone() Record {
	out := r
	out.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	return out
}

func (r Record) Field(name string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}

// CloneAll deep-copies a collection.
func CloneAll(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
