package client

import (
	"context"
	"fmt"
)

// Identifier is the user's description of which resource to act on. ID is
// only set through an explicit --id flag; a bare positional argument is
// always a name, even when it looks numeric, so a resource literally named
// "123" never collides with ID 123.
type Identifier struct {
	Positional string
	ID         int64 // 0 means unset; the platform never assigns ID 0
	Name       string
}

// nameGiven returns the name-path identifier value, if any. An explicit
// --name wins over the positional argument; giving both is rejected before
// resolution.
func (id Identifier) nameGiven() (string, bool) {
	if id.Name != "" {
		return id.Name, true
	}
	if id.Positional != "" {
		return id.Positional, true
	}
	return "", false
}

// IsZero reports whether no identifier was supplied at all.
func (id Identifier) IsZero() bool {
	return id.ID == 0 && id.Name == "" && id.Positional == ""
}

// Resolve finds exactly one record for the identifier, or fails
// deterministically.
//
// An explicit ID is fetched directly. A name (explicit or positional) is
// looked up via an exact-match filtered list, scoped when the descriptor
// declares a scope field. When both an ID and a name are given, both
// lookups run and must land on the same record.
func Resolve(ctx context.Context, col *Collection, ident Identifier, scopeID int64) (Record, error) {
	if ident.Positional != "" && ident.Name != "" {
		return nil, invalidArgumentErr("give either a positional %s or --%s, not both",
			col.desc.Display, col.desc.NameField)
	}
	if ident.IsZero() {
		return nil, invalidArgumentErr("%s identifier is required", col.desc.Display)
	}

	name, hasName := ident.nameGiven()

	var byID Record
	if ident.ID != 0 {
		rec, err := col.Get(ctx, ident.ID)
		if err != nil {
			return nil, err
		}
		byID = rec
		if !hasName {
			return byID, nil
		}
	}

	byName, err := resolveByName(ctx, col, name, scopeID)
	if err != nil {
		return nil, err
	}

	if byID != nil && byID.ID() != byName.ID() {
		return nil, &Error{
			Kind:     KindCrossValidation,
			Resource: col.desc.Display,
			Message: fmt.Sprintf("%s --id %d is %q (ID %d) but %q is ID %d; give one identifier or matching ones",
				col.desc.Display, ident.ID, byID.Str(col.desc.NameField), byID.ID(), name, byName.ID()),
			IDs: []int64{byID.ID(), byName.ID()},
		}
	}
	if byID != nil {
		return byID, nil
	}
	return byName, nil
}

func resolveByName(ctx context.Context, col *Collection, name string, scopeID int64) (Record, error) {
	matches, err := col.FindByName(ctx, name, scopeID)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, notFoundErr(col.desc.Display, name)
	case 1:
		return matches[0], nil
	default:
		ids := make([]int64, len(matches))
		for i, m := range matches {
			ids[i] = m.ID()
		}
		return nil, &Error{
			Kind:       KindAmbiguous,
			Resource:   col.desc.Display,
			Identifier: name,
			IDs:        ids,
		}
	}
}

// CreateNamed creates a record after verifying its name is free within
// scope. A collision fails with the existing record's ID before any create
// request is issued, instead of forwarding the backend's duplicate error.
func (col *Collection) CreateNamed(ctx context.Context, name string, fields map[string]any, scopeID int64) (Record, error) {
	existing, err := col.FindByName(ctx, name, scopeID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, &Error{
			Kind:       KindDuplicate,
			Resource:   col.desc.Display,
			Identifier: name,
			IDs:        []int64{existing[0].ID()},
		}
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields[col.desc.NameField] = name
	return col.Create(ctx, fields)
}
