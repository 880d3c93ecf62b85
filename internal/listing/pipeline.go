// Package listing turns a canonical collection plus the current UI state into
// one page of rows. Apply is pure: it never mutates its input and is fully
// recomputed on every call, so the view can be re-derived from canonical
// state at any time.
package listing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

type FilterState struct {
	Search string

	// Per-field equality filters, ANDed together.
	Fields map[string]string

	// Tab restricts to the status bucket named in the kind spec ("" or
	// "all" means no restriction).
	Tab string

	// Optional CreatedAt range; zero bounds are open.
	DateFrom time.Time
	DateTo   time.Time
}

type SortState struct {
	Field string
	Desc  bool
}

type PageState struct {
	Page     int // zero-based
	PageSize int
}

type Result struct {
	Items      []records.Record
	TotalCount int
}

// Apply filters, sorts and paginates. Order: tab scope, field filters (AND),
// free-text search (OR over the kind's searchable fields, case-insensitive
// substring), date range, stable type-aware sort, contiguous slice.
// TotalCount is the post-filter, pre-pagination size. An out-of-range page
// yields an empty page, never an error.
func Apply(spec records.KindSpec, coll []records.Record, f FilterState, s SortState, p PageState) Result {
	filtered := make([]records.Record, 0, len(coll))
	for _, rec := range coll {
		if !inTab(spec, rec, f.Tab) {
			continue
		}
		if !matchesFields(rec, f.Fields) {
			continue
		}
		if !matchesSearch(spec, rec, f.Search) {
			continue
		}
		if !inDateRange(rec, f.DateFrom, f.DateTo) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if s.Field != "" {
		sortRecords(filtered, s)
	}

	total := len(filtered)
	if p.PageSize <= 0 {
		return Result{Items: filtered, TotalCount: total}
	}

	start := p.Page * p.PageSize
	if p.Page < 0 || start >= total {
		return Result{Items: []records.Record{}, TotalCount: total}
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return Result{Items: filtered[start:end], TotalCount: total}
}

func inTab(spec records.KindSpec, rec records.Record, tab string) bool {
	if tab == "" || tab == "all" {
		return true
	}
	statuses, ok := spec.Tabs[tab]
	if !ok {
		return true
	}
	for _, st := range statuses {
		if rec.Status == st {
			return true
		}
	}
	return false
}

func matchesFields(rec records.Record, fields map[string]string) bool {
	for name, want := range fields {
		if want == "" {
			continue
		}
		if !strings.EqualFold(fieldString(rec, name), want) {
			return false
		}
	}
	return true
}

func matchesSearch(spec records.KindSpec, rec records.Record, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.DisplayID), q) {
		return true
	}
	for _, name := range spec.Searchable {
		if strings.Contains(strings.ToLower(fieldString(rec, name)), q) {
			return true
		}
	}
	return false
}

func inDateRange(rec records.Record, from, to time.Time) bool {
	if !from.IsZero() && rec.CreatedAt.Before(from) {
		return false
	}
	if !to.IsZero() && rec.CreatedAt.After(to) {
		return false
	}
	return true
}

// sortRecords is stable: equal keys keep their relative input order.
func sortRecords(items []records.Record, s SortState) {
	sort.SliceStable(items, func(i, j int) bool {
		less, eq := compare(items[i], items[j], s.Field)
		if eq {
			return false
		}
		if s.Desc {
			return !less
		}
		return less
	})
}

// compare is type-aware: numbers compare numerically, timestamps by instant,
// everything else as case-folded strings. Missing values rank as zero/empty.
func compare(a, b records.Record, field string) (less, eq bool) {
	av, bv := sortValue(a, field), sortValue(b, field)

	an, aIsNum := asNumber(av)
	bn, bIsNum := asNumber(bv)
	if (aIsNum || av == nil) && (bIsNum || bv == nil) && (aIsNum || bIsNum) {
		// missing values rank as zero against numbers
		return an < bn, an == bn
	}

	at, aIsTime := asTime(av)
	bt, bIsTime := asTime(bv)
	if aIsTime && bIsTime {
		return at.Before(bt), at.Equal(bt)
	}

	as := strings.ToLower(asString(av))
	bs := strings.ToLower(asString(bv))
	return as < bs, as == bs
}

func sortValue(rec records.Record, field string) any {
	switch field {
	case "created_at", "createdAt", "date":
		return rec.CreatedAt
	case "status":
		return string(rec.Status)
	case "display_id", "id":
		return rec.DisplayID
	case "notes":
		return rec.Notes
	}
	return rec.Field(field)
}

func fieldString(rec records.Record, name string) string {
	return asString(sortValue(rec, name))
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case nil:
		return 0, false
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
