package rms

import (
	"context"
)

// Pagination defaults. The backend serves at most DefaultPageSize items per
// page; MaxPages is a hard safety bound against a misbehaving backend that
// keeps returning full pages.
const (
	DefaultPageSize = 100
	DefaultMaxPages = 1000
)

// PageLister fetches one page of a list endpoint. Every resource client's
// List method satisfies it.
type PageLister[T any] interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[T], error)
}

// pageCursor tracks progress through a paged result set for the duration of
// one CollectAll or iterator call. It advances strictly by the page size and
// is never shared between calls.
type pageCursor struct {
	offset   int
	limit    int
	fetched  int
	pages    int
	maxPages int
	total    *int
	done     bool
}

// PageOption tunes a CollectAll or iterator call.
type PageOption func(*pageCursor)

// WithMaxPages overrides the pagination safety bound.
func WithMaxPages(maxPages int) PageOption {
	return func(c *pageCursor) {
		if maxPages > 0 {
			c.maxPages = maxPages
		}
	}
}

func newPageCursor(params *QueryParams, opts []PageOption) *pageCursor {
	cursor := &pageCursor{
		limit:    DefaultPageSize,
		maxPages: DefaultMaxPages,
	}
	if params != nil && params.Limit > 0 {
		cursor.limit = params.Limit
	}

	if params != nil && params.Offset > 0 {
		cursor.offset = params.Offset
	}

	for _, opt := range opts {
		opt(cursor)
	}

	return cursor
}

// record notes one fetched page and decides whether another page may be
// requested. The loop stops on a short (or empty) page, on reaching a
// backend-reported total, or at the max-pages bound.
func (c *pageCursor) record(count int, total *int) {
	c.pages++
	c.fetched += count
	c.offset += c.limit

	if total != nil {
		c.total = total
	}

	switch {
	case count < c.limit:
		c.done = true
	case c.total != nil && c.fetched >= *c.total:
		c.done = true
	case c.pages >= c.maxPages:
		// Hard stop, not an error: surface what was accumulated.
		c.done = true
	}
}

// CollectAll fetches every page of a list endpoint and returns the
// concatenation of the pages' data arrays in the order received. Items are
// not deduplicated: if the backend's collection mutates mid-pagination,
// duplicates or gaps are surfaced as-is.
func CollectAll[T any](ctx context.Context, lister PageLister[T], params *QueryParams, opts ...PageOption) ([]T, error) {
	cursor := newPageCursor(params, opts)
	pageParams := params.Clone()
	pageParams.Limit = cursor.limit

	var items []T

	for !cursor.done {
		pageParams.Offset = cursor.offset

		page, err := lister.List(ctx, pageParams)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Data...)
		cursor.record(len(page.Data), page.Meta.Total)
	}

	return items, nil
}

// PageIterator lazily walks a paged result set, fetching the next page only
// when the consumer has drained the current buffer. It is forward-only and
// must not be shared across goroutines.
type PageIterator[T any] struct {
	ctx    context.Context
	lister PageLister[T]
	params *QueryParams
	cursor *pageCursor
	buffer []T
	index  int
	err    error
}

// NewPageIterator creates an iterator over a list endpoint. The first page
// is fetched on the first HasNext/Next call.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], params *QueryParams, opts ...PageOption) *PageIterator[T] {
	cursor := newPageCursor(params, opts)
	pageParams := params.Clone()
	pageParams.Limit = cursor.limit

	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		params: pageParams,
		cursor: cursor,
	}
}

// HasNext reports whether another item is available, fetching the next page
// if the buffer is exhausted and the cursor has not terminated.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	for it.index >= len(it.buffer) {
		if it.cursor.done {
			return false
		}

		if !it.fetchNextPage() {
			return false
		}
	}

	return true
}

// Next returns the next item. Callers should check HasNext first; calling
// Next past the end returns ErrNoMoreItems.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// Err returns the first error encountered while fetching pages.
func (it *PageIterator[T]) Err() error {
	return it.err
}

func (it *PageIterator[T]) fetchNextPage() bool {
	it.params.Offset = it.cursor.offset

	page, err := it.lister.List(it.ctx, it.params)
	if err != nil {
		it.err = err

		return false
	}

	it.buffer = page.Data
	it.index = 0
	it.cursor.record(len(page.Data), page.Meta.Total)

	return len(page.Data) > 0
}
