package client_test

import (
	"strings"
	"testing"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func TestResolveNumericLookingName(t *testing.T) {
	// Inventory "Demo Inventory" (ID 5) has a host literally named "123"
	// with ID 77; no host with ID 123 exists.
	fake := newFakePlatform(t)
	fake.add(hostPath, map[string]any{"id": 77, "name": "123", "inventory": 5})
	fake.add(hostPath, map[string]any{"id": 78, "name": "web01", "inventory": 5})
	srv := fake.server()
	defer srv.Close()

	hosts := newTestClient(srv).Collection(client.Host)

	// A bare positional "123" is a name lookup, never an ID lookup.
	rec, err := client.Resolve(t.Context(), hosts, client.Identifier{Positional: "123"}, 5)
	if err != nil {
		t.Fatalf("Resolve positional %q: %v", "123", err)
	}
	if rec.ID() != 77 {
		t.Errorf("resolved ID = %d, want 77 (the host named \"123\")", rec.ID())
	}

	// ID lookup is only reachable through the explicit ID path.
	_, err = client.Resolve(t.Context(), hosts, client.Identifier{ID: 123}, 0)
	if !client.IsNotFound(err) {
		t.Errorf("Resolve --id 123 error = %v, want NotFound", err)
	}
}

func TestResolveByExplicitID(t *testing.T) {
	fake := newFakePlatform(t)
	fake.add(orgPath, map[string]any{"id": 5, "name": "Engineering"})
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	rec, err := client.Resolve(t.Context(), orgs, client.Identifier{ID: 5}, 0)
	if err != nil {
		t.Fatalf("Resolve --id 5: %v", err)
	}
	if rec.Str("name") != "Engineering" {
		t.Errorf("name = %q, want Engineering", rec.Str("name"))
	}
}

func TestResolveCrossValidation(t *testing.T) {
	fake := newFakePlatform(t)
	fake.add(orgPath, map[string]any{"id": 5, "name": "OldName"})
	fake.add(orgPath, map[string]any{"id": 9, "name": "OtherOrg"})
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	tests := []struct {
		name    string
		ident   client.Identifier
		wantID  int64
		wantErr client.Kind
	}{
		{
			name:   "id and matching name agree",
			ident:  client.Identifier{ID: 5, Positional: "OldName"},
			wantID: 5,
		},
		{
			name:    "id and name disagree",
			ident:   client.Identifier{ID: 5, Positional: "OtherOrg"},
			wantErr: client.KindCrossValidation,
		},
		{
			name:    "explicit name flag disagrees too",
			ident:   client.Identifier{ID: 9, Name: "OldName"},
			wantErr: client.KindCrossValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := client.Resolve(t.Context(), orgs, tt.ident, 0)
			if tt.wantErr != 0 {
				if client.KindOf(err) != tt.wantErr {
					t.Fatalf("error = %v, want kind %v", err, tt.wantErr)
				}
				// Both given values and both resolved records are named.
				msg := err.Error()
				for _, want := range []string{"OldName", "OtherOrg", "5", "9"} {
					if !strings.Contains(msg, want) {
						t.Errorf("error %q missing %q", msg, want)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if rec.ID() != tt.wantID {
				t.Errorf("resolved ID = %d, want %d", rec.ID(), tt.wantID)
			}
		})
	}
}

func TestResolveAmbiguous(t *testing.T) {
	// Two hosts in different inventories share a name; resolving without a
	// scope must hard-fail rather than pick one arbitrarily.
	fake := newFakePlatform(t)
	fake.add(hostPath, map[string]any{"id": 1, "name": "db01", "inventory": 5})
	fake.add(hostPath, map[string]any{"id": 2, "name": "db01", "inventory": 6})
	srv := fake.server()
	defer srv.Close()

	hosts := newTestClient(srv).Collection(client.Host)

	_, err := client.Resolve(t.Context(), hosts, client.Identifier{Positional: "db01"}, 0)
	if client.KindOf(err) != client.KindAmbiguous {
		t.Fatalf("error = %v, want Ambiguous", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "1") || !strings.Contains(msg, "2") {
		t.Errorf("ambiguous error %q should list the conflicting IDs", msg)
	}

	// Scoping by inventory disambiguates.
	rec, err := client.Resolve(t.Context(), hosts, client.Identifier{Positional: "db01"}, 6)
	if err != nil {
		t.Fatalf("scoped Resolve: %v", err)
	}
	if rec.ID() != 2 {
		t.Errorf("resolved ID = %d, want 2", rec.ID())
	}
}

func TestResolveSubstringBackendReverified(t *testing.T) {
	// If the backend's name filter is substring-based, client-side exact
	// matching must keep near-misses out of the result.
	fake := newFakePlatform(t)
	fake.substring = true
	fake.add(orgPath, map[string]any{"id": 1, "name": "prod"})
	fake.add(orgPath, map[string]any{"id": 2, "name": "prod-eu"})
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	rec, err := client.Resolve(t.Context(), orgs, client.Identifier{Positional: "prod"}, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.ID() != 1 {
		t.Errorf("resolved ID = %d, want 1 (exact match only)", rec.ID())
	}
}

func TestResolveArgumentErrors(t *testing.T) {
	fake := newFakePlatform(t)
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	tests := []struct {
		name  string
		ident client.Identifier
	}{
		{"nothing given", client.Identifier{}},
		{"positional and --name both given", client.Identifier{Positional: "a", Name: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(fake.requests)
			_, err := client.Resolve(t.Context(), orgs, tt.ident, 0)
			if !client.IsInvalidArgument(err) {
				t.Fatalf("error = %v, want InvalidArgument", err)
			}
			if len(fake.requests) != before {
				t.Errorf("argument errors must be detected before any network call")
			}
		})
	}
}

func TestCreateNamedDuplicate(t *testing.T) {
	fake := newFakePlatform(t)
	fake.add(orgPath, map[string]any{"id": 42, "name": "Existing"})
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	_, err := orgs.CreateNamed(t.Context(), "Existing", map[string]any{"description": "dup"}, 0)
	if client.KindOf(err) != client.KindDuplicate {
		t.Fatalf("error = %v, want Duplicate", err)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Errorf("duplicate error %q should name the existing ID", err)
	}
	for _, req := range fake.requests {
		if strings.HasPrefix(req, "POST") {
			t.Errorf("no create attempt should be made on collision, saw %s", req)
		}
	}
}

func TestCreateNamedRoundTrip(t *testing.T) {
	fake := newFakePlatform(t)
	srv := fake.server()
	defer srv.Close()

	orgs := newTestClient(srv).Collection(client.Organization)

	created, err := orgs.CreateNamed(t.Context(), "NewOrg", map[string]any{"description": "fresh"}, 0)
	if err != nil {
		t.Fatalf("CreateNamed: %v", err)
	}

	got, err := orgs.Get(t.Context(), created.ID())
	if err != nil {
		t.Fatalf("Get(created): %v", err)
	}
	if got.Str("name") != "NewOrg" || got.Str("description") != "fresh" {
		t.Errorf("round-trip mismatch: name=%q description=%q", got.Str("name"), got.Str("description"))
	}
}
