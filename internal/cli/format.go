package cli

import (
	"sort"
	"time"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

// formatDatetime renders a backend timestamp in local time, or UTC when
// requested. Unparseable values pass through untouched.
func formatDatetime(value string, useUTC bool) string {
	if value == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	if useUTC {
		return ts.UTC().Format("2006-01-02 15:04:05 MST")
	}
	return ts.Local().Format("2006-01-02 15:04:05 MST")
}

// hidden fields never shown in record detail output.
var hiddenFields = map[string]bool{
	"related":        true,
	"summary_fields": true,
	"url":            true,
	"type":           true,
}

// timestamp fields formatted per --utc.
var timeFields = map[string]bool{
	"created":      true,
	"modified":     true,
	"last_login":   true,
	"next_run":     true,
	"last_updated": true,
}

// recordFields flattens a record into ordered field names and display
// values. ID and the resource's name field come first; foreign keys with a
// summary_fields entry show the related resource's name instead of its raw
// ID.
func recordFields(rec client.Record, d client.Descriptor, useUTC bool) ([]string, []string) {
	keys := make([]string, 0, len(rec))
	for k, v := range rec {
		if hiddenFields[k] || k == "id" || k == d.NameField {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			// Nested objects are only useful through summary_fields.
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := []string{"ID", headerize(d.NameField)}
	values := []string{rec.Str("id"), rec.Str(d.NameField)}

	for _, k := range keys {
		v := rec.Str(k)
		if name := rec.SummaryName(k); name != "" {
			v = name
		}
		if timeFields[k] {
			v = formatDatetime(v, useUTC)
		}
		names = append(names, headerize(k))
		values = append(values, v)
	}
	return names, values
}

// headerize turns a snake_case field name into a display header.
func headerize(field string) string {
	out := make([]byte, 0, len(field))
	upper := true
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '_' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}
