package vapor_test

import (
	"context"
	"encoding/json"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

type testItem struct {
	ID string `json:"id"`
}

type testPage struct {
	items []testItem
	next  string
}

// pageServer serves envelope pages keyed by cursor and counts fetches. An
// empty cursor key addresses the first page.
type pageServer struct {
	pages      map[string]testPage
	total      int
	fetchCount atomic.Int64
	lastParams url.Values
}

func (s *pageServer) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	s.fetchCount.Add(1)
	s.lastParams = params

	page := s.pages[params.Get("cursor")]

	envelope := map[string]interface{}{
		"items": page.items,
		"meta": map[string]interface{}{
			"links": map[string]string{"next": page.next, "prev": ""},
			"total": s.total,
		},
	}

	return json.Marshal(envelope)
}

func twoPageServer() *pageServer {
	return &pageServer{
		pages: map[string]testPage{
			"":   {items: []testItem{{ID: "a"}, {ID: "b"}}, next: "c2"},
			"c2": {items: []testItem{{ID: "c"}}, next: ""},
		},
		total: 3,
	}
}

func TestCollectionFetchesLazily(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	// Construction performs no fetch
	assert.Equal(t, int64(0), server.fetchCount.Load())
	assert.Equal(t, vapor.NeverFetched, collection.State())

	// First access fetches exactly one page
	item, err := collection.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", item.ID)
	assert.Equal(t, int64(1), server.fetchCount.Load())

	// Second item is served from cache
	item, err = collection.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", item.ID)
	assert.Equal(t, int64(1), server.fetchCount.Load())

	// Third item needs the second page
	item, err = collection.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", item.ID)
	assert.Equal(t, int64(2), server.fetchCount.Load())
	assert.Equal(t, vapor.NoMoreData, collection.State())

	// Past the end fails without another fetch
	_, err = collection.Get(ctx, 3)
	require.ErrorIs(t, err, vapor.ErrIndexOutOfRange)
	assert.Equal(t, int64(2), server.fetchCount.Load())
}

func TestCollectionSendsCursorAndPageSize(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithPageSize(2), vapor.WithFilter("region", "ams"))
	require.NoError(t, err)

	_, err = collection.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "2", server.lastParams.Get("per_page"))
	assert.Equal(t, "ams", server.lastParams.Get("region"))
	assert.Empty(t, server.lastParams.Get("cursor"))

	_, err = collection.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "c2", server.lastParams.Get("cursor"))
	assert.Equal(t, "ams", server.lastParams.Get("region"))
}

func TestCollectionResumesFromCursor(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithCursor("c2"))
	require.NoError(t, err)

	items, err := collection.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, int64(1), server.fetchCount.Load())
}

func TestCollectionEmptyCursorShortCircuits(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithCursor(""))
	require.NoError(t, err)

	// An explicitly empty cursor is the exhaustion sentinel: no round trip
	_, err = collection.FetchPage(ctx)
	require.ErrorIs(t, err, vapor.ErrNoMoreData)
	assert.Equal(t, int64(0), server.fetchCount.Load())
	assert.Equal(t, vapor.NoMoreData, collection.State())
}

func TestCollectionCapacityPrefetch(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithCapacity(2))
	require.NoError(t, err)

	// The prefetch filled the cap during construction
	assert.Equal(t, int64(1), server.fetchCount.Load())
	assert.Equal(t, 2, collection.Len())

	// In-range access never fetches
	item, err := collection.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", item.ID)
	assert.Equal(t, int64(1), server.fetchCount.Load())

	// Out-of-range access fails immediately instead of fetching
	_, err = collection.Get(ctx, 2)
	require.ErrorIs(t, err, vapor.ErrIndexOutOfRange)
	assert.Equal(t, int64(1), server.fetchCount.Load())
}

func TestCollectionCapacityTruncatesOversizedPage(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithCapacity(1))
	require.NoError(t, err)

	assert.Equal(t, 1, collection.Len())

	item, err := collection.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", item.ID)
}

func TestCollectionCapacityExhaustionIsNotAnError(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	// More capacity than the server has items
	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items",
		vapor.WithCapacity(10))
	require.NoError(t, err)

	assert.Equal(t, 3, collection.Len())
	assert.Equal(t, vapor.NoMoreData, collection.State())
}

func TestCollectionMalformedEnvelopeLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	broken := false
	server := twoPageServer()
	fetch := func(ctx context.Context, params url.Values) ([]byte, error) {
		if broken {
			return []byte(`{"items": []}`), nil
		}

		return server.fetch(ctx, params)
	}

	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, fetch, "items")
	require.NoError(t, err)

	_, err = collection.Get(ctx, 0)
	require.NoError(t, err)

	cursorBefore := collection.Cursor()

	// A malformed envelope reports an error but leaves the collection usable
	broken = true
	_, err = collection.FetchPage(ctx)
	require.ErrorIs(t, err, vapor.ErrUnexpectedPayload)
	assert.Equal(t, vapor.Fetchable, collection.State())
	assert.Equal(t, cursorBefore, collection.Cursor())
	assert.Equal(t, 2, collection.Len())

	// Recovery: the same fetch succeeds once the server behaves again
	broken = false
	items, err := collection.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCollectionEmptyPageMeansExhaustion(t *testing.T) {
	t.Parallel()

	server := &pageServer{
		pages: map[string]testPage{
			"": {items: []testItem{}, next: ""},
		},
	}
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	first, err := collection.First(ctx)
	require.NoError(t, err)
	assert.Nil(t, first)
	assert.Equal(t, int64(1), server.fetchCount.Load())
	assert.Equal(t, vapor.NoMoreData, collection.State())
}

func TestCollectionFirst(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	first, err := collection.First(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, int64(1), server.fetchCount.Load())
}

func TestCollectionGetNegativeIndex(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	// Negative indexing needs the full collection
	item, err := collection.Get(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, "c", item.ID)
	assert.Equal(t, int64(2), server.fetchCount.Load())

	item, err = collection.Get(ctx, -3)
	require.NoError(t, err)
	assert.Equal(t, "a", item.ID)

	_, err = collection.Get(ctx, -4)
	require.ErrorIs(t, err, vapor.ErrIndexOutOfRange)
}

func TestCollectionSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ids := func(items []testItem) []string {
		result := make([]string, 0, len(items))
		for _, item := range items {
			result = append(result, item.ID)
		}

		return result
	}

	tests := []struct {
		name        string
		start       int
		stop        int
		step        int
		want        []string
		wantFetches int64
	}{
		{"first two", 0, 2, 1, []string{"a", "b"}, 1},
		{"open end", 0, vapor.End, 1, []string{"a", "b", "c"}, 2},
		{"overrun is truncated", 0, 10, 1, []string{"a", "b", "c"}, 2},
		{"stride", 0, vapor.End, 2, []string{"a", "c"}, 2},
		{"negative start", -2, vapor.End, 1, []string{"b", "c"}, 2},
		{"reversed", vapor.End, -10, -1, []string{"c", "b", "a"}, 2},
		{"inverted range is empty", 2, 0, 1, []string{}, 0},
		{"empty range", 1, 1, 1, []string{}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := twoPageServer()

			collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
			require.NoError(t, err)

			items, err := collection.Slice(ctx, tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
			assert.Equal(t, tt.wantFetches, server.fetchCount.Load())
		})
	}
}

func TestCollectionSliceZeroStep(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	_, err = collection.Slice(ctx, 0, 3, 0)
	require.ErrorIs(t, err, vapor.ErrInvalidSliceStep)
	assert.Equal(t, int64(0), server.fetchCount.Load())
}

func TestCollectionAll(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	items, err := collection.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[2].ID)
	assert.Equal(t, 3, collection.Total())

	// A second materialization is served from cache
	again, err := collection.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, again)
	assert.Equal(t, int64(2), server.fetchCount.Load())
}

func TestCollectionIterator(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	iterator := collection.Iterator(ctx)
	assert.True(t, iterator.HasNext())

	var seen []string

	for {
		item, err := iterator.Next()
		if err != nil {
			require.ErrorIs(t, err, vapor.ErrNoMoreItems)

			break
		}

		seen = append(seen, item.ID)
	}

	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.False(t, iterator.HasNext())

	// Re-iteration walks the cache without touching the server
	fetchesBefore := server.fetchCount.Load()
	second := collection.Iterator(ctx)

	var again []string

	for {
		item, err := second.Next()
		if err != nil {
			break
		}

		again = append(again, item.ID)
	}

	assert.Equal(t, seen, again)
	assert.Equal(t, fetchesBefore, server.fetchCount.Load())
}

func TestCollectionIteratorsAreIndependent(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	first := collection.Iterator(ctx)
	second := collection.Iterator(ctx)

	item, err := first.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", item.ID)

	item, err = first.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", item.ID)

	// The second iterator still starts at the beginning
	item, err = second.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", item.ID)
}

func TestCollectionForEach(t *testing.T) {
	t.Parallel()

	server := twoPageServer()
	ctx := context.Background()

	collection, err := vapor.NewCollection[testItem](ctx, server.fetch, "items")
	require.NoError(t, err)

	var seen []string

	err = collection.ForEach(ctx, func(item testItem) error {
		seen = append(seen, item.ID)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, seen)

	// Returning an error stops the walk
	count := 0
	err = collection.ForEach(ctx, func(item testItem) error {
		count++

		return vapor.ErrSomeError
	})
	require.ErrorIs(t, err, vapor.ErrSomeError)
	assert.Equal(t, 1, count)
}

func TestNewCollectionValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	server := twoPageServer()

	_, err := vapor.NewCollection[testItem](ctx, nil, "items")
	require.ErrorIs(t, err, vapor.ErrFetchFuncRequired)

	_, err = vapor.NewCollection[testItem](ctx, server.fetch, "")
	require.ErrorIs(t, err, vapor.ErrResourceKeyRequired)
}

func TestFetchStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "never_fetched", vapor.NeverFetched.String())
	assert.Equal(t, "fetchable", vapor.Fetchable.String())
	assert.Equal(t, "no_more_data", vapor.NoMoreData.String())
}
