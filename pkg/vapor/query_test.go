package vapor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestQueryParamsToValues(t *testing.T) {
	t.Parallel()

	params := vapor.NewQueryParams().
		WithCursor("abc").
		WithPerPage(50).
		WithTag("web").
		WithLabel("prod").
		WithRegion("ams").
		WithFilter("type", "vc2", "vhf")

	values := params.ToValues()
	assert.Equal(t, "abc", values.Get("cursor"))
	assert.Equal(t, "50", values.Get("per_page"))
	assert.Equal(t, "web", values.Get("tag"))
	assert.Equal(t, "prod", values.Get("label"))
	assert.Equal(t, "ams", values.Get("region"))
	assert.Equal(t, "vc2,vhf", values.Get("type"))
}

func TestQueryParamsOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	values := vapor.NewQueryParams().ToValues()
	assert.Empty(t, values)
}

func TestQueryParamsCapacityIsNeverSent(t *testing.T) {
	t.Parallel()

	values := vapor.NewQueryParams().WithCapacity(25).ToValues()
	assert.Empty(t, values)
}

func TestQueryParamsCollectionOptions(t *testing.T) {
	t.Parallel()

	params := vapor.NewQueryParams().
		WithCursor("abc").
		WithPerPage(50).
		WithCapacity(25).
		WithRegion("ams")

	opts := params.CollectionOptions()
	// cursor, page size, capacity, and the filter set
	assert.Len(t, opts, 4)
}

func TestQueryParamsCollectionOptionsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vapor.NewQueryParams().CollectionOptions())
}
