package rms

import (
	"fmt"
	"net/url"
	"strconv"
)

// QueryParams expresses the list options the RMS API understands: offset/
// limit paging, free-text search (q=) and field filters.
type QueryParams struct {
	Limit   int
	Offset  int
	Search  string
	Filters map[string]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string]string),
	}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets the page offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithSearch sets the free-text q= search term.
func (q *QueryParams) WithSearch(term string) *QueryParams {
	q.Search = term

	return q
}

// WithFilter adds a field filter.
func (q *QueryParams) WithFilter(field, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[field] = value

	return q
}

// FilterKeys returns the names of the set filters.
func (q *QueryParams) FilterKeys() []string {
	keys := make([]string, 0, len(q.Filters))
	for key := range q.Filters {
		keys = append(keys, key)
	}

	return keys
}

// Clone returns an independent copy. The paginator clones caller params so
// advancing the cursor never mutates the caller's descriptor.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := &QueryParams{
		Limit:   q.Limit,
		Offset:  q.Offset,
		Search:  q.Search,
		Filters: make(map[string]string, len(q.Filters)),
	}
	for field, value := range q.Filters {
		clone.Filters[field] = value
	}

	return clone
}

// ToValues converts the params to URL query values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.Search != "" {
		values.Set("q", q.Search)
	}

	for field, value := range q.Filters {
		values.Set(field, value)
	}

	return values
}

// FiltersFromAny converts arbitrary filter values to the string form the
// query layer sends.
func FiltersFromAny(filters map[string]any) map[string]string {
	converted := make(map[string]string, len(filters))
	for field, value := range filters {
		converted[field] = fmt.Sprintf("%v", value)
	}

	return converted
}
