package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size sent when no limit is given. Every list
// request carries an explicit page_size; the backends' own defaults differ
// and are never relied on.
const DefaultPageSize = 20

// PageRequest is the normalized pagination/sort parameters for one list
// operation.
type PageRequest struct {
	PageSize int
	OrderBy  string
}

// BuildPageRequest validates a user-supplied limit and resolves it to a
// concrete page size. explicit reports whether the user actually passed a
// limit, so a literal 0 can be rejected instead of treated as absent.
func BuildPageRequest(limit int, explicit bool) (PageRequest, error) {
	if explicit && limit <= 0 {
		return PageRequest{}, invalidArgumentErr("limit must be a positive integer, got %d", limit)
	}
	size := DefaultPageSize
	if explicit {
		size = limit
	}
	return PageRequest{PageSize: size, OrderBy: "id"}, nil
}

func (p PageRequest) query() url.Values {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(p.PageSize))
	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "id"
	}
	q.Set("order_by", orderBy)
	return q
}

// ListResult is the outcome of a list operation: the backend's total count
// and a lazy, finite sequence of records fetched page by page. It is
// single-use; re-listing requires a fresh call.
type ListResult struct {
	col      *Collection
	count    int
	buf      []Record
	nextPath string
	done     bool
}

// Count returns the total number of matching records reported by the
// backend, which may exceed what one page holds.
func (lr *ListResult) Count() int { return lr.count }

// Next returns the next record in the sequence. ok is false once the
// sequence is exhausted.
func (lr *ListResult) Next(ctx context.Context) (rec Record, ok bool, err error) {
	if len(lr.buf) == 0 && !lr.done {
		if err := lr.fetch(ctx); err != nil {
			return nil, false, err
		}
	}
	if len(lr.buf) == 0 {
		return nil, false, nil
	}
	rec = lr.buf[0]
	lr.buf = lr.buf[1:]
	return rec, true, nil
}

// Each walks the remaining sequence to exhaustion.
func (lr *ListResult) Each(ctx context.Context, fn func(Record) error) error {
	for {
		rec, ok, err := lr.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// All collects the remaining sequence into a slice.
func (lr *ListResult) All(ctx context.Context) ([]Record, error) {
	records := make([]Record, 0, lr.count)
	err := lr.Each(ctx, func(r Record) error {
		records = append(records, r)
		return nil
	})
	return records, err
}

func (lr *ListResult) fetch(ctx context.Context) error {
	if lr.nextPath == "" {
		lr.done = true
		return nil
	}
	var pg page
	if err := lr.col.client.do(ctx, "GET", lr.nextPath, nil, nil, &pg); err != nil {
		return err
	}
	lr.buf = pg.Results
	lr.count = pg.Count
	lr.nextPath = lr.col.client.relativize(pg.Next)
	if lr.nextPath == "" && len(lr.buf) == 0 {
		lr.done = true
	}
	return nil
}

// relativize turns the backend's next-page link into a path usable with do.
// The platform returns either an absolute URL or a rooted path+query.
func (c *Client) relativize(next *string) string {
	if next == nil || *next == "" {
		return ""
	}
	link := *next
	if strings.HasPrefix(link, c.baseURL) {
		return strings.TrimPrefix(link, c.baseURL)
	}
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		link = u.RequestURI()
	}
	return link
}
