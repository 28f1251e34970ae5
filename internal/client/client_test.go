package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapor-io/vapor-client/internal/client"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// newTestClient builds a client against an httptest server with the request
// gate disabled.
func newTestClient(t *testing.T, handler http.Handler) vapor.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(context.Background(), &vapor.Config{
		APIEndpoint:     server.URL,
		APIKey:          "test-key",
		RequestInterval: -1,
	})
	require.NoError(t, err)

	return apiClient
}

func TestNewRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := client.New(context.Background(), nil)
	require.ErrorIs(t, err, vapor.ErrConfigRequired)
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := client.New(context.Background(), &vapor.Config{})
	require.ErrorIs(t, err, vapor.ErrAPIKeyRequired)
}

func TestNewReadsAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("VAPOR_API_KEY", "env-key")

	apiClient, err := client.New(context.Background(), &vapor.Config{})
	require.NoError(t, err)
	assert.NotNil(t, apiClient.Account())
}

func TestClientExposesAllResourceClients(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.NotFoundHandler())

	assert.NotNil(t, apiClient.Account())
	assert.NotNil(t, apiClient.Applications())
	assert.NotNil(t, apiClient.Backups())
	assert.NotNil(t, apiClient.Billing())
	assert.NotNil(t, apiClient.BlockStorage())
	assert.NotNil(t, apiClient.DNS())
	assert.NotNil(t, apiClient.Firewall())
	assert.NotNil(t, apiClient.Instances())
	assert.NotNil(t, apiClient.ISO())
	assert.NotNil(t, apiClient.Kubernetes())
	assert.NotNil(t, apiClient.LoadBalancers())
	assert.NotNil(t, apiClient.OperatingSystems())
	assert.NotNil(t, apiClient.Plans())
	assert.NotNil(t, apiClient.Regions())
	assert.NotNil(t, apiClient.ReservedIPs())
	assert.NotNil(t, apiClient.Snapshots())
	assert.NotNil(t, apiClient.SSHKeys())
	assert.NotNil(t, apiClient.StartupScripts())
	assert.NotNil(t, apiClient.Users())
}

func TestAccountGet(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"account": {"name": "alice", "email": "alice@example.com", "balance": -12.5}}`))
	}))

	account, err := apiClient.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Name)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.InEpsilon(t, -12.5, account.Balance, 0.001)
}

func TestAccountGetError(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid API key", "status": 401}`))
	}))

	_, err := apiClient.Account().Get(context.Background())
	require.Error(t, err)
	assert.True(t, vapor.IsUnauthorized(err))
}
