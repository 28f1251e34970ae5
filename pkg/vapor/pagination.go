package vapor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"sync"
)

// FetchFunc retrieves one page of a list endpoint and returns the raw
// envelope bytes. Implementations are expected to be bound to a fixed
// endpoint; the collection only varies the query parameters between calls.
type FetchFunc func(ctx context.Context, params url.Values) ([]byte, error)

// FetchState tracks where a collection is in its fetch lifecycle.
type FetchState int

const (
	// NeverFetched means no page has been requested yet.
	NeverFetched FetchState = iota

	// Fetchable means at least one page was fetched and more may remain.
	Fetchable

	// NoMoreData is terminal: the server confirmed there are no further
	// pages. No fetch happens after this state is reached.
	NoMoreData
)

// String implements fmt.Stringer.
func (s FetchState) String() string {
	switch s {
	case NeverFetched:
		return "never_fetched"
	case Fetchable:
		return "fetchable"
	case NoMoreData:
		return "no_more_data"
	default:
		return fmt.Sprintf("fetch_state(%d)", int(s))
	}
}

// End marks an open upper bound for Slice, equivalent to omitting the stop
// index in a Python-style slice.
const End = math.MaxInt

// Collection presents a cursor-paginated list endpoint as a growable,
// randomly accessible sequence. Pages are fetched on demand and cached;
// cached items are never evicted or reordered, and item order follows the
// server-returned order across pages.
//
// A collection is safe for concurrent use. All blocking methods take a
// context that bounds the network fetches they may trigger.
type Collection[T any] struct {
	mu          sync.Mutex
	fetch       FetchFunc
	resourceKey string
	params      url.Values
	pageSize    int
	capacity    int // 0 means unbounded

	cursor    string
	cursorSet bool
	state     FetchState
	items     []T
	total     int
}

// CollectionOption configures a Collection at construction time.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	cursor    string
	cursorSet bool
	pageSize  int
	capacity  int
	params    url.Values
}

// WithCursor resumes pagination from a previously observed cursor instead of
// starting from the first page.
func WithCursor(cursor string) CollectionOption {
	return func(o *collectionOptions) {
		o.cursor = cursor
		o.cursorSet = true
	}
}

// WithPageSize sets the per_page hint sent with every page request.
func WithPageSize(size int) CollectionOption {
	return func(o *collectionOptions) {
		o.pageSize = size
	}
}

// WithCapacity caps the number of materialized items. Construction eagerly
// prefetches until the cap is reached or the server is exhausted; afterwards
// the collection never fetches again and out-of-range access fails
// immediately. Non-positive values are ignored. Raising the capacity after
// construction is not supported.
func WithCapacity(capacity int) CollectionOption {
	return func(o *collectionOptions) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// WithFilter adds a query parameter merged into every page request.
func WithFilter(key, value string) CollectionOption {
	return func(o *collectionOptions) {
		if o.params == nil {
			o.params = url.Values{}
		}

		o.params.Set(key, value)
	}
}

// WithFilterValues merges a set of query parameters into every page request.
func WithFilterValues(values url.Values) CollectionOption {
	return func(o *collectionOptions) {
		if o.params == nil {
			o.params = url.Values{}
		}

		for key, vals := range values {
			for _, v := range vals {
				o.params.Add(key, v)
			}
		}
	}
}

// NewCollection creates a collection over a list endpoint. resourceKey names
// the envelope key the item array lives under. When WithCapacity is given,
// construction blocks while the prefetch runs; reaching server exhaustion
// before the cap is filled is not an error.
func NewCollection[T any](ctx context.Context, fetch FetchFunc, resourceKey string, opts ...CollectionOption) (*Collection[T], error) {
	if fetch == nil {
		return nil, ErrFetchFuncRequired
	}

	if resourceKey == "" {
		return nil, ErrResourceKeyRequired
	}

	options := &collectionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	collection := &Collection[T]{
		fetch:       fetch,
		resourceKey: resourceKey,
		params:      options.params,
		pageSize:    options.pageSize,
		capacity:    options.capacity,
		cursor:      options.cursor,
		cursorSet:   options.cursorSet,
		state:       NeverFetched,
	}

	if collection.capacity > 0 {
		err := collection.prefetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("prefetching %d items: %w", collection.capacity, err)
		}
	}

	return collection, nil
}

// prefetch fills the cache up to capacity or server exhaustion.
func (c *Collection[T]) prefetch(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.items) < c.capacity && c.state != NoMoreData {
		before := len(c.items)

		_, err := c.fetchPageLocked(ctx)
		if errors.Is(err, ErrNoMoreData) {
			return nil
		}

		if err != nil {
			return err
		}

		if len(c.items) == before && c.state != NoMoreData {
			return ErrPaginationStalled
		}
	}

	return nil
}

// FetchPage fetches the next page and returns the newly cached items. It
// returns ErrNoMoreData once the server is exhausted.
func (c *Collection[T]) FetchPage(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fetchPageLocked(ctx)
}

// fetchPageLocked performs one page fetch. State is only mutated after the
// response decoded cleanly, so a malformed envelope leaves the collection
// exactly as it was.
func (c *Collection[T]) fetchPageLocked(ctx context.Context) ([]T, error) {
	if c.state == NoMoreData {
		return nil, ErrNoMoreData
	}

	// An already observed empty cursor means exhaustion without another
	// round trip.
	if c.cursorSet && c.cursor == "" {
		c.state = NoMoreData

		return nil, ErrNoMoreData
	}

	params := url.Values{}

	for key, vals := range c.params {
		for _, v := range vals {
			params.Add(key, v)
		}
	}

	if c.pageSize > 0 {
		params.Set("per_page", strconv.Itoa(c.pageSize))
	}

	if c.cursorSet && c.cursor != "" {
		params.Set("cursor", c.cursor)
	}

	body, err := c.fetch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	page, err := UnwrapPage(body, c.resourceKey)
	if err != nil {
		return nil, err
	}

	var batch []T

	err = json.Unmarshal(page.Items, &batch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s items: %s", ErrUnexpectedPayload, c.resourceKey, err)
	}

	c.total = page.Meta.Total
	c.cursor = page.Meta.Links.Next
	c.cursorSet = true

	if len(batch) == 0 {
		c.state = NoMoreData

		return nil, ErrNoMoreData
	}

	if c.capacity > 0 && len(c.items)+len(batch) > c.capacity {
		batch = batch[:c.capacity-len(c.items)]
	}

	c.items = append(c.items, batch...)

	if c.cursor == "" {
		c.state = NoMoreData
	} else {
		c.state = Fetchable
	}

	return batch, nil
}

// ensureIndexLocked grows the cache until index is covered or the server is
// exhausted. Exhaustion is not an error here; callers check the cache length
// afterwards. The loop is bounded because every successful fetch must grow
// the cache; a page that adds nothing without signaling exhaustion is a
// protocol violation.
func (c *Collection[T]) ensureIndexLocked(ctx context.Context, index int) error {
	if c.capacity > 0 {
		// Capacity mode is fetch-free after the construction prefetch.
		return nil
	}

	for index >= len(c.items) {
		if c.state == NoMoreData {
			return nil
		}

		before := len(c.items)

		_, err := c.fetchPageLocked(ctx)
		if errors.Is(err, ErrNoMoreData) {
			return nil
		}

		if err != nil {
			return err
		}

		if len(c.items) == before && c.state != NoMoreData {
			return ErrPaginationStalled
		}
	}

	return nil
}

// materializeAllLocked fetches until the server is exhausted or the capacity
// cap is reached.
func (c *Collection[T]) materializeAllLocked(ctx context.Context) error {
	return c.ensureIndexLocked(ctx, End)
}

// Get returns the item at index, fetching pages as needed. Negative indices
// count from the end of the collection, which requires materializing all
// remaining pages first.
func (c *Collection[T]) Get(ctx context.Context, index int) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 {
		err := c.materializeAllLocked(ctx)
		if err != nil {
			return zero, err
		}

		index += len(c.items)
		if index < 0 {
			return zero, fmt.Errorf("%w: %d with %d items", ErrIndexOutOfRange, index-len(c.items), len(c.items))
		}
	} else {
		err := c.ensureIndexLocked(ctx, index)
		if err != nil {
			return zero, err
		}
	}

	if index >= len(c.items) {
		return zero, fmt.Errorf("%w: %d with %d items", ErrIndexOutOfRange, index, len(c.items))
	}

	return c.items[index], nil
}

// Slice returns items selected by a Python-style slice. Use End as the stop
// value for an open upper bound. Out-of-range bounds never fail; the result
// is simply truncated to the available items. Negative or open bounds force
// all remaining pages to be fetched, since the collection's true length is
// unknowable otherwise.
func (c *Collection[T]) Slice(ctx context.Context, start, stop, step int) ([]T, error) {
	if step == 0 {
		return nil, ErrInvalidSliceStep
	}

	// Ranges that are empty by construction fetch nothing.
	if stop == start || (stop > start && step < 0) || (stop < start && step > 0) {
		return []T{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if start < 0 || stop < 0 || stop == End || step < 0 {
		err := c.materializeAllLocked(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		maxIndex := start
		if stop-1 > maxIndex {
			maxIndex = stop - 1
		}

		err := c.ensureIndexLocked(ctx, maxIndex)
		if err != nil {
			return nil, err
		}
	}

	begin, end := sliceIndices(start, stop, step, len(c.items))

	result := []T{}

	if step > 0 {
		for i := begin; i < end; i += step {
			result = append(result, c.items[i])
		}
	} else {
		for i := begin; i > end; i += step {
			result = append(result, c.items[i])
		}
	}

	return result, nil
}

// sliceIndices normalizes slice bounds against a known length, following
// Python's slice.indices semantics.
func sliceIndices(start, stop, step, length int) (int, int) {
	if step > 0 {
		start = clampIndex(start, length, 0, length)
		stop = clampIndex(stop, length, 0, length)
	} else {
		start = clampIndex(start, length, -1, length-1)
		stop = clampIndex(stop, length, -1, length-1)
	}

	return start, stop
}

// clampIndex resolves a possibly negative index and clamps it to [low, high].
func clampIndex(index, length, low, high int) int {
	if index == End {
		return high
	}

	if index < 0 {
		index += length
	}

	if index < low {
		return low
	}

	if index > high {
		return high
	}

	return index
}

// All fetches every remaining page and returns the full item list.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.materializeAllLocked(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]T, len(c.items))
	copy(result, c.items)

	return result, nil
}

// ForEach applies fn to every item in order, fetching pages as needed.
// Returning an error from fn stops the walk.
func (c *Collection[T]) ForEach(ctx context.Context, fn func(item T) error) error {
	iterator := c.Iterator(ctx)

	for {
		item, err := iterator.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return nil
		}

		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// First returns the first item, or nil without error when the collection is
// empty. Useful for get-or-nothing lookups over a filtered list.
func (c *Collection[T]) First(ctx context.Context) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.ensureIndexLocked(ctx, 0)
	if err != nil {
		return nil, err
	}

	if len(c.items) == 0 {
		return nil, nil
	}

	item := c.items[0]

	return &item, nil
}

// Len returns the number of currently cached items. It never triggers a
// fetch.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Total returns the server-reported total from the most recent page. The
// value is advisory; only the cursor protocol decides exhaustion.
func (c *Collection[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total
}

// State returns the current fetch state.
func (c *Collection[T]) State() FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Cursor returns the cursor for the next page, or an empty string once the
// server is exhausted or before the first fetch.
func (c *Collection[T]) Cursor() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor
}

// Iterator returns a fresh iterator positioned at the start of the
// collection. Iterators are independent: multiple iterators over the same
// collection do not affect each other, and iterating after exhaustion is
// served entirely from cache.
func (c *Collection[T]) Iterator(ctx context.Context) *CollectionIterator[T] {
	return &CollectionIterator[T]{
		collection: c,
		ctx:        ctx,
	}
}

// CollectionIterator walks a collection from the beginning, fetching pages
// on demand. It is not safe for concurrent use; create one per goroutine.
type CollectionIterator[T any] struct {
	collection *Collection[T]
	ctx        context.Context
	position   int
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the collection is exhausted.
func (it *CollectionIterator[T]) Next() (T, error) {
	item, err := it.collection.Get(it.ctx, it.position)
	if errors.Is(err, ErrIndexOutOfRange) {
		var zero T

		return zero, ErrNoMoreItems
	}

	if err != nil {
		var zero T

		return zero, err
	}

	it.position++

	return item, nil
}

// HasNext reports whether another item may be available. It never triggers a
// fetch, so it can report true just before Next observes exhaustion.
func (it *CollectionIterator[T]) HasNext() bool {
	if it.position < it.collection.Len() {
		return true
	}

	return it.collection.State() != NoMoreData
}
