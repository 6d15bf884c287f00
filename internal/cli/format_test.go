package cli

import (
	"encoding/json"
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func TestHeaderize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "Name"},
		{"scm_url", "Scm Url"},
		{"last_job_run", "Last Job Run"},
		{"id", "Id"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := headerize(tt.in); got != tt.want {
			t.Errorf("headerize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDatetime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		useUTC bool
		want   string
	}{
		{
			name:   "UTC rendering",
			in:     "2025-03-14T09:26:53.589Z",
			useUTC: true,
			want:   "2025-03-14 09:26:53 UTC",
		},
		{
			name:   "offset normalized to UTC",
			in:     "2025-03-14T11:26:53+02:00",
			useUTC: true,
			want:   "2025-03-14 09:26:53 UTC",
		},
		{
			name: "unparseable value passes through",
			in:   "not-a-timestamp",
			want: "not-a-timestamp",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDatetime(tt.in, tt.useUTC); got != tt.want {
				t.Errorf("formatDatetime(%q, %v) = %q, want %q", tt.in, tt.useUTC, got, tt.want)
			}
		})
	}
}

func TestRecordFields(t *testing.T) {
	rec := client.Record{
		"id":           json.Number("42"),
		"name":         "Demo Project",
		"scm_type":     "git",
		"scm_url":      "https://github.com/ansible/ansible-examples",
		"organization": json.Number("7"),
		"created":      "2025-03-14T09:26:53Z",
		"url":          "/api/controller/v2/projects/42/",
		"related":      map[string]any{"organization": "/api/controller/v2/organizations/7/"},
		"summary_fields": map[string]any{
			"organization": map[string]any{"id": json.Number("7"), "name": "Default"},
		},
	}

	names, values := recordFields(rec, client.DescriptorFor(client.Project), true)

	if names[0] != "ID" || values[0] != "42" {
		t.Errorf("first field = %s:%s, want ID:42", names[0], values[0])
	}
	if names[1] != "Name" || values[1] != "Demo Project" {
		t.Errorf("second field = %s:%s, want Name:Demo Project", names[1], values[1])
	}

	got := map[string]string{}
	for i, n := range names {
		got[n] = values[i]
	}

	if got["Organization"] != "Default" {
		t.Errorf("organization displayed as %q, want summary name \"Default\"", got["Organization"])
	}
	if got["Created"] != "2025-03-14 09:26:53 UTC" {
		t.Errorf("created displayed as %q, want formatted timestamp", got["Created"])
	}
	for _, hidden := range []string{"Url", "Related", "Summary Fields"} {
		if _, ok := got[hidden]; ok {
			t.Errorf("hidden field %q leaked into output", hidden)
		}
	}

	// Remaining fields are sorted after ID and the name field.
	rest := names[2:]
	sorted := append([]string(nil), rest...)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] < sorted[i-1] {
			t.Errorf("fields after header not sorted: %v", rest)
			break
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 40, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long value that does not fit", 10, "a long ..."},
		{"abc", 2, "ab"},
		{"Produktions-Umgebung für Kunden", 10, "Produkt..."},
		{"инвентарь продакшена", 12, "инвентарь..."},
		{"日本語ホスト", 4, "日..."},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.maxLen, got)
		}
	}
}

func TestGatherIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ids  []int64
		want []client.Identifier
	}{
		{
			name: "names only, order preserved",
			args: []string{"alpha", "beta"},
			want: []client.Identifier{{Positional: "alpha"}, {Positional: "beta"}},
		},
		{
			name: "ids only",
			ids:  []int64{3, 1},
			want: []client.Identifier{{ID: 3}, {ID: 1}},
		},
		{
			name: "one name plus one id pairs into a cross-validated identifier",
			args: []string{"alpha"},
			ids:  []int64{9},
			want: []client.Identifier{{Positional: "alpha", ID: 9}},
		},
		{
			name: "multiple names and ids stay independent",
			args: []string{"alpha", "beta"},
			ids:  []int64{9},
			want: []client.Identifier{{Positional: "alpha"}, {Positional: "beta"}, {ID: 9}},
		},
		{
			name: "empty",
			want: []client.Identifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gatherIdentifiers(tt.args, tt.ids)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("gatherIdentifiers(%v, %v) = %v, want %v", tt.args, tt.ids, got, tt.want)
			}
		})
	}
}

func TestIdentifierLabel(t *testing.T) {
	tests := []struct {
		ident client.Identifier
		want  string
	}{
		{client.Identifier{Positional: "web-01"}, `"web-01"`},
		{client.Identifier{Name: "web-01"}, `"web-01"`},
		{client.Identifier{ID: 42}, "ID 42"},
	}

	for _, tt := range tests {
		if got := identifierLabel(tt.ident); got != tt.want {
			t.Errorf("identifierLabel(%+v) = %q, want %q", tt.ident, got, tt.want)
		}
	}
}
