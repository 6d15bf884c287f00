package client_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func TestBuildPageRequest(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		explicit bool
		wantSize int
		wantErr  bool
	}{
		{"no limit defaults to 20", 0, false, 20, false},
		{"positive limit", 5, true, 5, false},
		{"large limit", 500, true, 500, false},
		{"explicit zero rejected", 0, true, 0, true},
		{"negative rejected", -5, true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, err := client.BuildPageRequest(tt.limit, tt.explicit)
			if tt.wantErr {
				if !client.IsInvalidArgument(err) {
					t.Fatalf("error = %v, want InvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildPageRequest: %v", err)
			}
			if pr.PageSize != tt.wantSize {
				t.Errorf("PageSize = %d, want %d", pr.PageSize, tt.wantSize)
			}
			if pr.OrderBy != "id" {
				t.Errorf("OrderBy = %q, want id", pr.OrderBy)
			}
		})
	}
}

func TestListSendsExplicitPageParameters(t *testing.T) {
	fake := newFakePlatform(t)
	for i := 1; i <= 3; i++ {
		fake.add(orgPath, map[string]any{"id": i, "name": fmt.Sprintf("org-%d", i)})
	}
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	pr, _ := client.BuildPageRequest(0, false)
	if _, err := orgs.List(t.Context(), nil, pr); err != nil {
		t.Fatalf("List: %v", err)
	}

	req := fake.requests[len(fake.requests)-1]
	u, err := url.Parse(strings.TrimPrefix(req, "GET "))
	if err != nil {
		t.Fatalf("parsing request %q: %v", req, err)
	}
	q := u.Query()
	if q.Get("page_size") != "20" {
		t.Errorf("page_size = %q, want 20", q.Get("page_size"))
	}
	if q.Get("order_by") != "id" {
		t.Errorf("order_by = %q, want id", q.Get("order_by"))
	}
}

func TestListLazySequenceSpansPages(t *testing.T) {
	fake := newFakePlatform(t)
	const total = 47
	for i := 1; i <= total; i++ {
		fake.add(hostPath, map[string]any{"id": i, "name": fmt.Sprintf("host-%02d", i), "inventory": 1})
	}
	srv := fake.server()
	defer srv.Close()

	hosts := newTestClient(srv).Collection(client.Host)

	pr, _ := client.BuildPageRequest(0, false)
	lr, err := hosts.List(t.Context(), nil, pr)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if lr.Count() != total {
		t.Fatalf("Count = %d, want %d", lr.Count(), total)
	}

	seen := map[int64]bool{}
	records, err := lr.All(t.Context())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != total {
		t.Fatalf("iterated %d records, want %d (no skips or duplicates)", len(records), total)
	}
	var prev int64
	for _, rec := range records {
		id := rec.ID()
		if seen[id] {
			t.Fatalf("record ID %d returned twice across page boundaries", id)
		}
		seen[id] = true
		if id < prev {
			t.Fatalf("records out of order: %d after %d", id, prev)
		}
		prev = id
	}
}

func TestListLimitBoundsPage(t *testing.T) {
	fake := newFakePlatform(t)
	for i := 1; i <= 30; i++ {
		fake.add(orgPath, map[string]any{"id": i, "name": fmt.Sprintf("org-%d", i)})
	}
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	pr, err := client.BuildPageRequest(7, true)
	if err != nil {
		t.Fatalf("BuildPageRequest: %v", err)
	}
	lr, err := orgs.List(t.Context(), nil, pr)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	// First page holds at most the requested size while the reported total
	// may exceed it.
	first := 0
	for ; first < 7; first++ {
		_, ok, err := lr.Next(t.Context())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
	}
	if first != 7 {
		t.Errorf("first page yielded %d records, want 7", first)
	}
	if lr.Count() != 30 {
		t.Errorf("Count = %d, want 30", lr.Count())
	}

	req := fake.requests[0]
	if !strings.Contains(req, "page_size=7") {
		t.Errorf("request %q should carry page_size=7", req)
	}
}
