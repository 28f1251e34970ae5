package client

import (
	"context"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// PlansClient implements vapor.PlansClient.
type PlansClient struct {
	httpClient *http.Client
}

// NewPlansClient creates a new plans client.
func NewPlansClient(httpClient *http.Client) *PlansClient {
	return &PlansClient{
		httpClient: httpClient,
	}
}

// List implements vapor.PlansClient.List.
func (c *PlansClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Plan], error) {
	return listCollection[vapor.Plan](ctx, c.httpClient, "/plans", "plans", params)
}

// ListMetal implements vapor.PlansClient.ListMetal.
func (c *PlansClient) ListMetal(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.MetalPlan], error) {
	return listCollection[vapor.MetalPlan](ctx, c.httpClient, "/plans-metal", "plans_metal", params)
}
