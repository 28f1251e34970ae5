package vaporclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapor-io/vapor-client/pkg/vapor"
	"github.com/vapor-io/vapor-client/pkg/vaporclient"
)

func TestNewRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := vaporclient.New(context.Background(), nil)
	require.ErrorIs(t, err, vapor.ErrConfigRequired)
}

func TestNewNormalizesEndpoint(t *testing.T) {
	t.Parallel()

	config := &vapor.Config{
		APIEndpoint: "api.example.com/v2/",
		APIKey:      "key",
	}

	_, err := vaporclient.New(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v2", config.APIEndpoint)
}

func TestNewKeepsExplicitScheme(t *testing.T) {
	t.Parallel()

	config := &vapor.Config{
		APIEndpoint: "http://localhost:8080",
		APIKey:      "key",
	}

	_, err := vaporclient.New(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", config.APIEndpoint)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := vaporclient.NewWithAPIKey(context.Background(), "key")
	require.NoError(t, err)
	assert.NotNil(t, client.Instances())
}

func TestClientTalksToServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/regions") {
			_, _ = w.Write([]byte(`{
				"regions": [{"id": "ams", "city": "Amsterdam", "country": "NL"}],
				"meta": {"links": {"next": "", "prev": ""}, "total": 1}
			}`))

			return
		}

		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := vaporclient.New(context.Background(), &vapor.Config{
		APIEndpoint:     server.URL,
		APIKey:          "key",
		RequestInterval: -1,
	})
	require.NoError(t, err)

	collection, err := client.Regions().List(context.Background(), nil)
	require.NoError(t, err)

	regions, err := collection.All(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "ams", regions[0].ID)
}
