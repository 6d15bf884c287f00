package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Collection exposes the uniform verb set for one resource type. The
// descriptor selects the backend and wire shape; callers never branch on
// which API they are talking to.
type Collection struct {
	client *Client
	desc   Descriptor
}

// Collection returns the adapter for a resource type.
func (c *Client) Collection(t ResourceType) *Collection {
	return &Collection{client: c, desc: DescriptorFor(t)}
}

// Descriptor returns the collection's static metadata.
func (col *Collection) Descriptor() Descriptor { return col.desc }

// List issues a filtered, paginated list request and returns the lazy
// record sequence. The page request is always applied explicitly; the
// backend's own pagination defaults are never relied on.
func (col *Collection) List(ctx context.Context, filters url.Values, pr PageRequest) (*ListResult, error) {
	q := pr.query()
	for key, vals := range filters {
		for _, v := range vals {
			q.Add(key, v)
		}
	}

	var pg page
	path := col.desc.endpointPath()
	if err := col.client.do(ctx, "GET", path+"?"+q.Encode(), nil, nil, &pg); err != nil {
		return nil, err
	}
	return &ListResult{
		col:      col,
		count:    pg.Count,
		buf:      pg.Results,
		nextPath: col.client.relativize(pg.Next),
	}, nil
}

// Get fetches a record by ID. A nonexistent ID yields a NotFound error,
// never a nil record.
func (col *Collection) Get(ctx context.Context, id int64) (Record, error) {
	var rec Record
	err := col.client.do(ctx, "GET", col.itemPath(id), nil, nil, &rec)
	if err != nil {
		return nil, col.describe(err, strconv.FormatInt(id, 10))
	}
	return rec, nil
}

// Create posts a new record.
func (col *Collection) Create(ctx context.Context, fields map[string]any) (Record, error) {
	var rec Record
	err := col.client.do(ctx, "POST", col.desc.endpointPath(), nil, fields, &rec)
	if err != nil {
		return nil, col.describe(err, "")
	}
	return rec, nil
}

// Update patches only the given fields of an existing record.
func (col *Collection) Update(ctx context.Context, id int64, fields map[string]any) (Record, error) {
	var rec Record
	err := col.client.do(ctx, "PATCH", col.itemPath(id), nil, fields, &rec)
	if err != nil {
		return nil, col.describe(err, strconv.FormatInt(id, 10))
	}
	return rec, nil
}

// Delete removes a record by ID.
func (col *Collection) Delete(ctx context.Context, id int64) error {
	err := col.client.do(ctx, "DELETE", col.itemPath(id), nil, nil, nil)
	if err != nil {
		return col.describe(err, strconv.FormatInt(id, 10))
	}
	return nil
}

// FindByName lists records whose name field exactly equals name, optionally
// restricted to a scope. The backend filter is assumed exact, but matches
// are re-verified client-side before being counted, so a substring-matching
// backend cannot produce false positives.
func (col *Collection) FindByName(ctx context.Context, name string, scopeID int64) ([]Record, error) {
	filters := url.Values{}
	filters.Set(col.desc.NameField, name)
	if col.desc.ScopeField != "" && scopeID != 0 {
		filters.Set(col.desc.ScopeField, strconv.FormatInt(scopeID, 10))
	}

	pr := PageRequest{PageSize: DefaultPageSize, OrderBy: "id"}
	lr, err := col.List(ctx, filters, pr)
	if err != nil {
		return nil, err
	}

	var matches []Record
	err = lr.Each(ctx, func(r Record) error {
		if r.Str(col.desc.NameField) == name {
			matches = append(matches, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (col *Collection) itemPath(id int64) string {
	return fmt.Sprintf("%s%d/", col.desc.endpointPath(), id)
}

// describe fills resource context into taxonomy errors that the transport
// could not know about.
func (col *Collection) describe(err error, identifier string) error {
	if e, ok := err.(*Error); ok {
		if e.Resource == "" {
			e.Resource = col.desc.Display
		}
		if e.Identifier == "" {
			e.Identifier = identifier
		}
	}
	return err
}
