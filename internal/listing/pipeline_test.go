package listing

import (
	"testing"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

func complaintSpec(t *testing.T) records.KindSpec {
	t.Helper()
	spec, ok := records.SpecFor(records.KindComplaint)
	if !ok {
		t.Fatal("complaint spec missing")
	}
	return spec
}

func complaint(id string, status records.Status, subject string, created string) records.Record {
	ts, _ := time.Parse("2006-01-02", created)
	return records.Record{
		ID: id, DisplayID: "CMP-2026-" + id, Kind: records.KindComplaint,
		Status: status, CreatedAt: ts, WriteState: records.WriteCommitted,
		Fields: map[string]any{
			"subject": subject, "description": "", "customerName": "", "againstName": "",
			"priority": "medium", "assignedTo": "",
		},
	}
}

// Seven complaints, tab=open plus a search matching two of them, pageSize=1
// page=1: exactly the second match comes back and the total is 2.
func TestOpenTabSearchPagination(t *testing.T) {
	coll := []records.Record{
		complaint("1", records.StatusOpen, "hotel order late", "2026-05-01"),
		complaint("2", records.StatusOpen, "damaged crate", "2026-05-02"),
		complaint("3", records.StatusInProgress, "hotel billing", "2026-05-03"),
		complaint("4", records.StatusResolved, "spoiled milk", "2026-05-04"),
		complaint("5", records.StatusClosed, "hotel refund", "2026-05-05"),
		complaint("6", records.StatusOpen, "wrong hotel delivery", "2026-05-06"),
		complaint("7", records.StatusInProgress, "underweight bags", "2026-05-07"),
	}

	res := Apply(complaintSpec(t), coll,
		FilterState{Tab: "open", Search: "hotel"},
		SortState{}, // keep input order
		PageState{Page: 1, PageSize: 1},
	)

	if res.TotalCount != 2 {
		t.Fatalf("want totalCount 2, got %d", res.TotalCount)
	}
	if len(res.Items) != 1 {
		t.Fatalf("want exactly 1 page item, got %d", len(res.Items))
	}
	if res.Items[0].ID != "6" {
		t.Fatalf("want the second match (id 6), got %s", res.Items[0].ID)
	}
}

func TestFieldFiltersCommute(t *testing.T) {
	spec := complaintSpec(t)
	coll := []records.Record{
		complaint("1", records.StatusOpen, "a", "2026-01-01"),
		complaint("2", records.StatusOpen, "b", "2026-01-02"),
		complaint("3", records.StatusClosed, "c", "2026-01-03"),
	}
	coll[0].Fields["priority"] = "high"
	coll[2].Fields["priority"] = "high"

	ab := Apply(spec, coll, FilterState{Fields: map[string]string{"status": "open", "priority": "high"}}, SortState{}, PageState{})
	ba := Apply(spec, coll, FilterState{Fields: map[string]string{"priority": "high", "status": "open"}}, SortState{}, PageState{})

	if len(ab.Items) != 1 || len(ba.Items) != 1 || ab.Items[0].ID != ba.Items[0].ID {
		t.Fatalf("filters must commute: %v vs %v", ab.Items, ba.Items)
	}
}

func TestPaginationPartitionsFilteredSet(t *testing.T) {
	spec := complaintSpec(t)
	var coll []records.Record
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		coll = append(coll, complaint(id, records.StatusOpen, "s"+id, "2026-04-0"+id))
	}

	for _, size := range []int{1, 2, 3, 10} {
		full := Apply(spec, coll, FilterState{}, SortState{Field: "created_at"}, PageState{PageSize: 0})

		var joined []records.Record
		for page := 0; ; page++ {
			res := Apply(spec, coll, FilterState{}, SortState{Field: "created_at"}, PageState{Page: page, PageSize: size})
			if len(res.Items) > size {
				t.Fatalf("page size violated: %d > %d", len(res.Items), size)
			}
			if len(res.Items) == 0 {
				break
			}
			joined = append(joined, res.Items...)
		}

		if len(joined) != len(full.Items) {
			t.Fatalf("size %d: concat of pages has %d items, want %d", size, len(joined), len(full.Items))
		}
		for i := range joined {
			if joined[i].ID != full.Items[i].ID {
				t.Fatalf("size %d: page concat diverges at %d", size, i)
			}
		}
	}
}

func TestOutOfRangePageIsEmptyNotError(t *testing.T) {
	spec := complaintSpec(t)
	coll := []records.Record{complaint("1", records.StatusOpen, "a", "2026-01-01")}

	res := Apply(spec, coll, FilterState{}, SortState{}, PageState{Page: 9, PageSize: 10})
	if len(res.Items) != 0 {
		t.Fatalf("want empty page, got %d items", len(res.Items))
	}
	if res.TotalCount != 1 {
		t.Fatalf("totalCount must stay post-filter size, got %d", res.TotalCount)
	}
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	spec := complaintSpec(t)
	coll := []records.Record{
		complaint("a", records.StatusOpen, "same", "2026-01-01"),
		complaint("b", records.StatusOpen, "same", "2026-01-01"),
		complaint("c", records.StatusOpen, "same", "2026-01-01"),
	}

	res := Apply(spec, coll, FilterState{}, SortState{Field: "subject"}, PageState{})
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if res.Items[i].ID != id {
			t.Fatalf("stable sort broken: got %s at %d", res.Items[i].ID, i)
		}
	}
}

func TestSortIsTypeAware(t *testing.T) {
	spec, _ := records.SpecFor(records.KindPayment)
	mk := func(id string, amount float64) records.Record {
		return records.Record{
			ID: id, Kind: records.KindPayment, Status: records.StatusPending,
			Fields: map[string]any{"amount": amount},
		}
	}
	// numerically 9 < 10 < 100; lexically "10" < "100" < "9"
	coll := []records.Record{mk("a", 100), mk("b", 9), mk("c", 10)}

	res := Apply(spec, coll, FilterState{}, SortState{Field: "amount"}, PageState{})
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if res.Items[i].ID != id {
			t.Fatalf("numeric sort wrong: got %s at %d", res.Items[i].ID, i)
		}
	}

	// date sort on CreatedAt, descending
	d1 := complaint("old", records.StatusOpen, "x", "2025-01-01")
	d2 := complaint("new", records.StatusOpen, "x", "2026-01-01")
	res = Apply(complaintSpec(t), []records.Record{d1, d2}, FilterState{}, SortState{Field: "created_at", Desc: true}, PageState{})
	if res.Items[0].ID != "new" {
		t.Fatalf("date sort desc wrong: got %s first", res.Items[0].ID)
	}

	// missing numeric values rank as zero
	res = Apply(spec, []records.Record{mk("x", 5), {ID: "none", Kind: records.KindPayment, Fields: map[string]any{}}}, FilterState{}, SortState{Field: "amount"}, PageState{})
	if res.Items[0].ID != "none" {
		t.Fatalf("missing value must sort as zero, got %s first", res.Items[0].ID)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	spec := complaintSpec(t)
	coll := []records.Record{
		complaint("2", records.StatusOpen, "b", "2026-01-02"),
		complaint("1", records.StatusOpen, "a", "2026-01-01"),
	}

	_ = Apply(spec, coll, FilterState{}, SortState{Field: "subject"}, PageState{})
	if coll[0].ID != "2" || coll[1].ID != "1" {
		t.Fatal("input collection was reordered")
	}
}

func TestDateRangeFilter(t *testing.T) {
	spec := complaintSpec(t)
	coll := []records.Record{
		complaint("1", records.StatusOpen, "a", "2026-01-01"),
		complaint("2", records.StatusOpen, "b", "2026-02-01"),
		complaint("3", records.StatusOpen, "c", "2026-03-01"),
	}
	from, _ := time.Parse("2006-01-02", "2026-01-15")
	to, _ := time.Parse("2006-01-02", "2026-02-15")

	res := Apply(spec, coll, FilterState{DateFrom: from, DateTo: to}, SortState{}, PageState{})
	if len(res.Items) != 1 || res.Items[0].ID != "2" {
		t.Fatalf("date range filter wrong: %v", res.Items)
	}
}
