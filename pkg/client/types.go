package client

import (
	"encoding/json"
	"strconv"
)

// Record is one resource as returned by the platform. Both APIs share the
// same envelope conventions (integer id, per-type attribute set, a
// summary_fields object naming related resources), so records are kept as
// decoded JSON objects and read through typed accessors. Numbers are decoded
// as json.Number to keep 64-bit IDs exact.
type Record map[string]any

// ID returns the backend-assigned identifier, or 0 if absent.
func (r Record) ID() int64 {
	return r.Int("id")
}

// Int returns the named field as an int64, or 0 if absent or non-numeric.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// Str returns the named field as a string. Non-string scalars are formatted;
// absent fields and nulls yield "".
func (r Record) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// SummaryRef is an id/name pair from a record's summary_fields, used to show
// human-readable names for foreign keys instead of raw IDs.
type SummaryRef struct {
	ID   int64
	Name string
}

// Summary returns the named entry from summary_fields, if present.
func (r Record) Summary(key string) (SummaryRef, bool) {
	sf, ok := r["summary_fields"].(map[string]any)
	if !ok {
		return SummaryRef{}, false
	}
	entry, ok := sf[key].(map[string]any)
	if !ok {
		return SummaryRef{}, false
	}
	ref := SummaryRef{Name: Record(entry).Str("name")}
	ref.ID = Record(entry).Int("id")
	if ref.Name == "" {
		// Users carry username instead of name.
		ref.Name = Record(entry).Str("username")
	}
	return ref, ok
}

// SummaryName returns the display name of a related resource from
// summary_fields, or "" when the relation is absent.
func (r Record) SummaryName(key string) string {
	ref, ok := r.Summary(key)
	if !ok {
		return ""
	}
	return ref.Name
}

// page is the paginated envelope both APIs wrap list results in.
type page struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Record `json:"results"`
}
