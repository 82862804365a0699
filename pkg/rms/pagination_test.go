package rms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID int `json:"id"`
}

// fakeLister serves deterministic pages out of a fixed collection and records
// the requests it saw.
type fakeLister struct {
	items    []item
	total    *int
	requests []QueryParams
	failIdx  int
	err      error
}

func newFakeLister(count int, reportTotal bool) *fakeLister {
	items := make([]item, count)
	for i := range items {
		items[i] = item{ID: i + 1}
	}

	lister := &fakeLister{items: items, failIdx: -1}
	if reportTotal {
		lister.total = &count
	}

	return lister
}

func (f *fakeLister) List(_ context.Context, params *QueryParams) (*ListResponse[item], error) {
	f.requests = append(f.requests, *params)

	if f.err != nil && len(f.requests)-1 == f.failIdx {
		return nil, f.err
	}

	start := params.Offset
	if start > len(f.items) {
		start = len(f.items)
	}

	end := start + params.Limit
	if end > len(f.items) {
		end = len(f.items)
	}

	return &ListResponse[item]{
		Data: f.items[start:end],
		Meta: Meta{Total: f.total, Limit: params.Limit, Offset: params.Offset},
	}, nil
}

func TestCollectAll(t *testing.T) {
	lister := newFakeLister(342, true)

	items, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100))
	require.NoError(t, err)
	assert.Len(t, items, 342)
	assert.Len(t, lister.requests, 4)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 342, items[341].ID)

	// Offsets advance strictly by the page size.
	for i, req := range lister.requests {
		assert.Equal(t, i*100, req.Offset)
		assert.Equal(t, 100, req.Limit)
	}
}

func TestCollectAll_StopsOnShortPage(t *testing.T) {
	// No total reported; termination comes from the short final page.
	lister := newFakeLister(250, false)

	items, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100))
	require.NoError(t, err)
	assert.Len(t, items, 250)
	assert.Len(t, lister.requests, 3)
}

func TestCollectAll_StopsOnEmptyPage(t *testing.T) {
	// Exactly two full pages and no total: the third request comes back
	// empty and ends the loop.
	lister := newFakeLister(200, false)

	items, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100))
	require.NoError(t, err)
	assert.Len(t, items, 200)
	assert.Len(t, lister.requests, 3)
}

func TestCollectAll_StopsOnTotal(t *testing.T) {
	// Total equals two exact pages; no third request is made.
	lister := newFakeLister(200, true)

	items, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100))
	require.NoError(t, err)
	assert.Len(t, items, 200)
	assert.Len(t, lister.requests, 2)
}

func TestCollectAll_MaxPagesBound(t *testing.T) {
	lister := newFakeLister(1000, false)

	items, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100), WithMaxPages(3))
	require.NoError(t, err)
	assert.Len(t, items, 300)
	assert.Len(t, lister.requests, 3)
}

func TestCollectAll_PropagatesError(t *testing.T) {
	lister := newFakeLister(300, false)
	lister.failIdx = 1
	lister.err = errors.New("backend unavailable")

	_, err := CollectAll[item](context.Background(), lister, NewQueryParams().WithLimit(100))
	require.ErrorContains(t, err, "backend unavailable")
}

func TestCollectAll_DoesNotMutateCallerParams(t *testing.T) {
	lister := newFakeLister(250, false)
	params := NewQueryParams().WithLimit(100)

	_, err := CollectAll[item](context.Background(), lister, params)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, 100, params.Limit)
}

func TestCollectAll_NilParamsUseDefaults(t *testing.T) {
	lister := newFakeLister(50, false)

	items, err := CollectAll[item](context.Background(), lister, nil)
	require.NoError(t, err)
	assert.Len(t, items, 50)
	require.Len(t, lister.requests, 1)
	assert.Equal(t, DefaultPageSize, lister.requests[0].Limit)
}

func TestPageIterator(t *testing.T) {
	lister := newFakeLister(250, false)
	iter := NewPageIterator[item](context.Background(), lister, NewQueryParams().WithLimit(100))

	var ids []int

	for iter.HasNext() {
		next, err := iter.Next()
		require.NoError(t, err)
		ids = append(ids, next.ID)
	}

	require.NoError(t, iter.Err())
	assert.Len(t, ids, 250)
	assert.Equal(t, 1, ids[0])
	assert.Equal(t, 250, ids[249])
	assert.Len(t, lister.requests, 3)
}

func TestPageIterator_LazyFetch(t *testing.T) {
	lister := newFakeLister(250, false)
	iter := NewPageIterator[item](context.Background(), lister, NewQueryParams().WithLimit(100))

	// Nothing is fetched until the first HasNext.
	assert.Empty(t, lister.requests)

	require.True(t, iter.HasNext())
	assert.Len(t, lister.requests, 1)

	// Draining the first page triggers exactly one more fetch.
	for i := 0; i < 100; i++ {
		_, err := iter.Next()
		require.NoError(t, err)
	}

	require.True(t, iter.HasNext())
	assert.Len(t, lister.requests, 2)
}

func TestPageIterator_NextPastEnd(t *testing.T) {
	lister := newFakeLister(1, false)
	iter := NewPageIterator[item](context.Background(), lister, NewQueryParams().WithLimit(100))

	first, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	_, err = iter.Next()
	require.ErrorIs(t, err, ErrNoMoreItems)
}

func TestPageIterator_SurfacesFetchError(t *testing.T) {
	lister := newFakeLister(300, false)
	lister.failIdx = 1
	lister.err = errors.New("backend unavailable")

	iter := NewPageIterator[item](context.Background(), lister, NewQueryParams().WithLimit(100))

	for i := 0; i < 100; i++ {
		_, err := iter.Next()
		require.NoError(t, err)
	}

	assert.False(t, iter.HasNext())
	require.ErrorContains(t, iter.Err(), "backend unavailable")

	_, err := iter.Next()
	require.ErrorContains(t, err, "backend unavailable")
}

func TestPageIterator_EmptyCollection(t *testing.T) {
	lister := newFakeLister(0, false)
	iter := NewPageIterator[item](context.Background(), lister, NewQueryParams().WithLimit(100))

	assert.False(t, iter.HasNext())
	require.NoError(t, iter.Err())
	assert.Len(t, lister.requests, 1)
}
