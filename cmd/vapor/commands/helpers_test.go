package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestListParamsDefaultsToSinglePage(t *testing.T) {
	t.Parallel()

	params := ListParams(ListOptions{PerPage: 25})
	assert.Equal(t, 25, params.PerPage)
	assert.Equal(t, 25, params.Capacity)
	assert.Empty(t, params.Cursor)
}

func TestListParamsAllPages(t *testing.T) {
	t.Parallel()

	params := ListParams(ListOptions{AllPages: true, PerPage: 25})
	assert.Equal(t, 25, params.PerPage)
	assert.Zero(t, params.Capacity)
}

func TestListParamsZeroPerPage(t *testing.T) {
	t.Parallel()

	params := ListParams(ListOptions{})
	assert.Zero(t, params.PerPage)
	assert.Equal(t, constants.DefaultPageSize, params.Capacity)
}

func TestListParamsCursor(t *testing.T) {
	t.Parallel()

	params := ListParams(ListOptions{Cursor: "abc", AllPages: true})
	assert.Equal(t, "abc", params.Cursor)
}

func TestRenderStructuredRejectsUnknownFormat(t *testing.T) {
	viper.Set("output", "xml")
	t.Cleanup(func() { viper.Set("output", OutputFormatTable) })

	_, err := renderStructured(struct{}{})
	require.ErrorIs(t, err, vapor.ErrInvalidOutputFormat)
}

func TestOrNotAvailable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "web", orNotAvailable("web"))
	assert.Equal(t, NotAvailable, orNotAvailable(""))
}
