package fallback

import (
	"testing"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

func TestProvideCoversEveryKind(t *testing.T) {
	for _, kind := range records.Kinds() {
		items := Provide(kind)
		if len(items) == 0 {
			t.Errorf("%s: empty sample dataset", kind)
		}
		for _, r := range items {
			if r.Kind != kind {
				t.Errorf("%s: record %s has kind %s", kind, r.ID, r.Kind)
			}
			if r.ID == "" || r.DisplayID == "" {
				t.Errorf("%s: record missing ids: %+v", kind, r)
			}
			if r.Status == "" {
				t.Errorf("%s: record %s missing status", kind, r.ID)
			}
			if r.WriteState != records.WriteCommitted {
				t.Errorf("%s: sample data must be committed, got %s", kind, r.WriteState)
			}
		}
	}
}

func TestProvideIsIdempotentByValue(t *testing.T) {
	a := Provide(records.KindSeller)
	b := Provide(records.KindSeller)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Status != b[i].Status {
			t.Fatalf("records differ at %d", i)
		}
	}
}

func TestProvideReturnsIsolatedCopies(t *testing.T) {
	a := Provide(records.KindSeller)
	a[0].Status = records.StatusRejected
	a[0].Fields["name"] = "mutated"

	b := Provide(records.KindSeller)
	if b[0].Status == records.StatusRejected {
		t.Fatal("status mutation leaked into the dataset")
	}
	if b[0].Fields["name"] == "mutated" {
		t.Fatal("field mutation leaked into the dataset")
	}
}
