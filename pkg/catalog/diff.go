package catalog

import (
	"sort"
	"strconv"
)

// Change describes one difference between a deployed catalog and the live
// registry, keyed by member OID. Have is the catalog side and Want the
// registry side; an empty side on a "presence" change means the record is
// missing there entirely.
type Change struct {
	OID   string `json:"oid"`
	Field string `json:"field"`
	Have  string `json:"have"`
	Want  string `json:"want"`
}

// Diff compares a loaded catalog (have) against the registry's records
// (want), matching by OID. The result is ordered by OID then field so drift
// reports are stable across runs. An empty result means no drift.
func Diff(have, want []Record) []Change {
	haveBy := indexByOID(have)
	wantBy := indexByOID(want)

	var changes []Change
	for oid, h := range haveBy {
		w, ok := wantBy[oid]
		if !ok {
			changes = append(changes, Change{OID: oid, Field: "presence", Have: h.Text})
			continue
		}
		changes = append(changes, fieldChanges(oid, h, w)...)
	}
	for oid, w := range wantBy {
		if _, ok := haveBy[oid]; !ok {
			changes = append(changes, Change{OID: oid, Field: "presence", Want: w.Text})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].OID != changes[j].OID {
			return changes[i].OID < changes[j].OID
		}
		return changes[i].Field < changes[j].Field
	})
	return changes
}

func fieldChanges(oid string, h, w Record) []Change {
	var out []Change
	if h.Text != w.Text {
		out = append(out, Change{OID: oid, Field: "text", Have: h.Text, Want: w.Text})
	}
	if h.Value != w.Value {
		out = append(out, Change{OID: oid, Field: "value", Have: formatInt(h.Value), Want: formatInt(w.Value)})
	}
	if h.Index != w.Index {
		out = append(out, Change{OID: oid, Field: "index", Have: formatInt(h.Index), Want: formatInt(w.Index)})
	}
	if h.Visible != w.Visible {
		out = append(out, Change{OID: oid, Field: "isVisible", Have: strconv.FormatBool(h.Visible), Want: strconv.FormatBool(w.Visible)})
	}
	return out
}

func indexByOID(recs []Record) map[string]Record {
	out := make(map[string]Record, len(recs))
	for _, r := range recs {
		out[canonicalOID(r.OID)] = r
	}
	return out
}

func formatInt(v int32) string { return strconv.FormatInt(int64(v), 10) }
