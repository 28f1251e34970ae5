package vapor

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common list options for Vapor Cloud endpoints.
// Unset fields are omitted from the outgoing request entirely, never sent as
// empty values.
type QueryParams struct {
	// Cursor resumes listing from a server-issued page token.
	Cursor string

	// PerPage bounds items returned per network round trip.
	PerPage int

	// Tag filters resources by tag.
	Tag string

	// Label filters resources by label.
	Label string

	// Region filters resources by region identifier.
	Region string

	// Capacity caps the total number of items materialized by the returned
	// collection and triggers an eager prefetch at construction time. It is
	// never sent to the server.
	Capacity int

	// Filters holds additional resource-specific parameters. Multiple
	// values for a key are joined with commas.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithCursor sets the page cursor.
func (q *QueryParams) WithCursor(cursor string) *QueryParams {
	q.Cursor = cursor

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithTag sets the tag filter.
func (q *QueryParams) WithTag(tag string) *QueryParams {
	q.Tag = tag

	return q
}

// WithLabel sets the label filter.
func (q *QueryParams) WithLabel(label string) *QueryParams {
	q.Label = label

	return q
}

// WithRegion sets the region filter.
func (q *QueryParams) WithRegion(region string) *QueryParams {
	q.Region = region

	return q
}

// WithCapacity caps the total number of items the returned collection will
// materialize.
func (q *QueryParams) WithCapacity(capacity int) *QueryParams {
	q.Capacity = capacity

	return q
}

// WithFilter adds a resource-specific filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.Tag != "" {
		values.Set("tag", q.Tag)
	}

	if q.Label != "" {
		values.Set("label", q.Label)
	}

	if q.Region != "" {
		values.Set("region", q.Region)
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}

// CollectionOptions translates the parameters into collection construction
// options, so resource clients can pass a QueryParams straight through to
// NewCollection.
func (q *QueryParams) CollectionOptions() []CollectionOption {
	var opts []CollectionOption

	if q.Cursor != "" {
		opts = append(opts, WithCursor(q.Cursor))
	}

	if q.PerPage > 0 {
		opts = append(opts, WithPageSize(q.PerPage))
	}

	if q.Capacity > 0 {
		opts = append(opts, WithCapacity(q.Capacity))
	}

	filters := url.Values{}

	if q.Tag != "" {
		filters.Set("tag", q.Tag)
	}

	if q.Label != "" {
		filters.Set("label", q.Label)
	}

	if q.Region != "" {
		filters.Set("region", q.Region)
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			filters.Set(key, strings.Join(vals, ","))
		}
	}

	if len(filters) > 0 {
		opts = append(opts, WithFilterValues(filters))
	}

	return opts
}
