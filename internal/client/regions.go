package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// RegionsClient implements vapor.RegionsClient.
type RegionsClient struct {
	httpClient *http.Client
}

// NewRegionsClient creates a new regions client.
func NewRegionsClient(httpClient *http.Client) *RegionsClient {
	return &RegionsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.RegionsClient.List.
func (c *RegionsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Region], error) {
	return listCollection[vapor.Region](ctx, c.httpClient, "/regions", "regions", params)
}

// Availability implements vapor.RegionsClient.Availability.
func (c *RegionsClient) Availability(ctx context.Context, regionID string, planType string) ([]string, error) {
	query := url.Values{}
	if planType != "" {
		query.Set("type", planType)
	}

	resp, err := c.httpClient.Get(ctx, "/regions/"+regionID+"/availability", query)
	if err != nil {
		return nil, fmt.Errorf("getting region availability: %w", err)
	}

	payload, err := vapor.UnwrapSingle(resp.Body, "available_plans")
	if err != nil {
		return nil, fmt.Errorf("parsing region availability: %w", err)
	}

	var plans []string
	if err := json.Unmarshal(payload, &plans); err != nil {
		return nil, fmt.Errorf("parsing region availability: %w", err)
	}

	return plans, nil
}
