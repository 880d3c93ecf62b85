package normalize

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

// Record maps one raw upstream record into the canonical shape. It never
// fails: missing or malformed fields get documented defaults, so downstream
// consumers always receive a usable record.
func Record(raw map[string]any, kind records.Kind) records.Record {
	if rec, ok := fromCanonical(raw, kind); ok {
		return rec
	}

	m, ok := kindMappings[kind]
	if !ok {
		m = kindMappings[records.KindReport]
	}

	spec, _ := records.SpecFor(kind)

	rec := records.Record{
		Kind:       kind,
		WriteState: records.WriteCommitted,
		Fields:     make(map[string]any, len(m.fields)),
	}

	if v, ok := firstString(raw, m.idSources); ok {
		rec.ID = v
	}
	if v, ok := first(raw, m.createdSources); ok {
		rec.CreatedAt = parseTime(v)
	}
	if v, ok := firstString(raw, m.notesSources); ok {
		rec.Notes = v
	}

	for _, fm := range m.fields {
		if v, ok := first(raw, fm.sources); ok {
			rec.Fields[fm.canonical] = v
		} else {
			rec.Fields[fm.canonical] = fm.def
		}
	}

	rec.Status = deriveStatus(raw, m, spec.DefaultStatus)

	if rec.ID == "" {
		rec.ID = "gen-" + contentHash(rec)
	}
	rec.DisplayID = displayID(kind, rec)

	return rec
}

// All normalizes a fetch batch.
func All(raws []map[string]any, kind records.Kind) []records.Record {
	out := make([]records.Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Record(raw, kind))
	}
	return out
}

// fromCanonical short-circuits records that already carry the canonical
// shape (fallback datasets, snapshot restores, reconciled echoes of our own
// writes). Normalization is idempotent through this path.
func fromCanonical(raw map[string]any, kind records.Kind) (records.Record, bool) {
	k, _ := raw["kind"].(string)
	fields, hasFields := raw["fields"].(map[string]any)
	if k != string(kind) || !hasFields {
		return records.Record{}, false
	}

	rec := records.Record{
		Kind:   kind,
		Fields: make(map[string]any, len(fields)),
	}
	rec.ID, _ = raw["id"].(string)
	rec.DisplayID, _ = raw["display_id"].(string)
	rec.Notes, _ = raw["notes"].(string)
	if s, ok := raw["status"].(string); ok {
		rec.Status = records.Status(s)
	}
	if ws, ok := raw["write_state"].(string); ok && ws != "" {
		rec.WriteState = records.WriteState(ws)
	} else {
		rec.WriteState = records.WriteCommitted
	}
	if v, ok := raw["created_at"]; ok {
		rec.CreatedAt = parseTime(v)
	}
	for fk, fv := range fields {
		rec.Fields[fk] = fv
	}
	if rec.DisplayID == "" {
		rec.DisplayID = displayID(kind, rec)
	}
	return rec, true
}

// deriveStatus: explicit rejected flag > explicit verified flag > free-text
// status > kind default.
func deriveStatus(raw map[string]any, m kindMapping, def records.Status) records.Status {
	for _, key := range m.rejectedFlags {
		if b, ok := lookupBool(raw, key); ok && b {
			return records.StatusRejected
		}
	}
	for _, key := range m.verifiedFlags {
		if b, ok := lookupBool(raw, key); ok && b {
			return records.StatusApproved
		}
	}
	for _, key := range m.statusText {
		s, ok := firstString(raw, []string{key})
		if !ok || s == "" {
			continue
		}
		if st, ok := m.statusWords[strings.ToLower(strings.TrimSpace(s))]; ok {
			return st
		}
	}
	return def
}

// displayID is assigned once per entity from a hash of the server ID, so
// re-sorting or re-filtering never changes a visible identifier.
func displayID(kind records.Kind, rec records.Record) string {
	year := rec.CreatedAt.Year()
	if rec.CreatedAt.IsZero() {
		year = time.Now().Year()
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(rec.ID))
	return fmt.Sprintf("%s-%d-%06x", displayPrefix[kind], year, h.Sum32()&0xffffff)
}

// contentHash keys records the backend ships without any ID. Built from the
// sorted display fields, so it is stable across refetch order changes.
func contentHash(rec records.Record) string {
	keys := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v;", k, rec.Fields[k])
	}
	return fmt.Sprintf("%012x", h.Sum64()&0xffffffffffff)
}

// --- raw value access ---

func first(raw map[string]any, sources []string) (any, bool) {
	for _, src := range sources {
		if v, ok := lookup(raw, src); ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func firstString(raw map[string]any, sources []string) (string, bool) {
	v, ok := first(raw, sources)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return fmt.Sprintf("%v", t), true
	}
	return "", false
}

// lookup resolves a dotted path ("customer.name") into nested objects.
func lookup(raw map[string]any, path string) (any, bool) {
	cur := any(raw)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func lookupBool(raw map[string]any, path string) (bool, bool) {
	v, ok := lookup(raw, path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case string:
		for _, layout := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	case float64:
		// epoch seconds, or millis when clearly too large
		if t > 1e12 {
			return time.UnixMilli(int64(t)).UTC()
		}
		if t > 0 {
			return time.Unix(int64(t), 0).UTC()
		}
	}
	return time.Time{}
}
