package client

import (
	"context"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// OperatingSystemsClient implements vapor.OperatingSystemsClient.
type OperatingSystemsClient struct {
	httpClient *http.Client
}

// NewOperatingSystemsClient creates a new operating systems client.
func NewOperatingSystemsClient(httpClient *http.Client) *OperatingSystemsClient {
	return &OperatingSystemsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.OperatingSystemsClient.List.
func (c *OperatingSystemsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.OS], error) {
	return listCollection[vapor.OS](ctx, c.httpClient, "/os", "os", params)
}
