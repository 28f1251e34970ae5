package vapor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestUnwrapPage(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"instances": [{"id": "i-1"}, {"id": "i-2"}],
		"meta": {"links": {"next": "abc", "prev": ""}, "total": 7}
	}`)

	page, err := vapor.UnwrapPage(body, "instances")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": "i-1"}, {"id": "i-2"}]`, string(page.Items))
	assert.Equal(t, "abc", page.Meta.Links.Next)
	assert.Equal(t, 7, page.Meta.Total)
}

func TestUnwrapPageRejectsAmbiguousShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing meta", `{"instances": []}`},
		{"missing resource key", `{"meta": {"links": {"next": "", "prev": ""}, "total": 0}}`},
		{"wrong resource key", `{"servers": [], "meta": {"links": {"next": "", "prev": ""}, "total": 0}}`},
		{"extra key", `{"instances": [], "extra": 1, "meta": {"links": {"next": "", "prev": ""}, "total": 0}}`},
		{"error body", `{"error": "not found", "status": 404}`},
		{"not an object", `[1, 2, 3]`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := vapor.UnwrapPage([]byte(tt.body), "instances")
			require.ErrorIs(t, err, vapor.ErrUnexpectedPayload)
		})
	}
}

func TestUnwrapSingle(t *testing.T) {
	t.Parallel()

	payload, err := vapor.UnwrapSingle([]byte(`{"instance": {"id": "i-1"}}`), "instance")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "i-1"}`, string(payload))
}

func TestUnwrapSingleRejectsAmbiguousShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"wrong key", `{"server": {"id": "i-1"}}`},
		{"extra key", `{"instance": {"id": "i-1"}, "meta": {}}`},
		{"empty object", `{}`},
		{"not an object", `"instance"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := vapor.UnwrapSingle([]byte(tt.body), "instance")
			require.ErrorIs(t, err, vapor.ErrUnexpectedPayload)
		})
	}
}

func TestDecodeSingle(t *testing.T) {
	t.Parallel()

	instance, err := vapor.DecodeSingle[vapor.Instance]([]byte(`{"instance": {"id": "i-1", "label": "web"}}`), "instance")
	require.NoError(t, err)
	assert.Equal(t, "i-1", instance.ID)
	assert.Equal(t, "web", instance.Label)

	_, err = vapor.DecodeSingle[vapor.Instance]([]byte(`{"instance": "nope"}`), "instance")
	require.Error(t, err)
}
