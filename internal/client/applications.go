package client

import (
	"context"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// ApplicationsClient implements vapor.ApplicationsClient.
type ApplicationsClient struct {
	httpClient *http.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(httpClient *http.Client) *ApplicationsClient {
	return &ApplicationsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Application], error) {
	return listCollection[vapor.Application](ctx, c.httpClient, "/applications", "applications", params)
}
