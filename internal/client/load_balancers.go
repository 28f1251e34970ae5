package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// LoadBalancersClient implements vapor.LoadBalancersClient.
type LoadBalancersClient struct {
	httpClient *http.Client
}

// NewLoadBalancersClient creates a new load balancers client.
func NewLoadBalancersClient(httpClient *http.Client) *LoadBalancersClient {
	return &LoadBalancersClient{
		httpClient: httpClient,
	}
}

// List implements vapor.LoadBalancersClient.List.
func (c *LoadBalancersClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.LoadBalancer], error) {
	return listCollection[vapor.LoadBalancer](ctx, c.httpClient, "/load-balancers", "load_balancers", params)
}

// Get implements vapor.LoadBalancersClient.Get.
func (c *LoadBalancersClient) Get(ctx context.Context, loadBalancerID string) (*vapor.LoadBalancer, error) {
	resp, err := c.httpClient.Get(ctx, "/load-balancers/"+loadBalancerID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting load balancer: %w", err)
	}

	lb, err := vapor.DecodeSingle[vapor.LoadBalancer](resp.Body, "load_balancer")
	if err != nil {
		return nil, fmt.Errorf("parsing load balancer: %w", err)
	}

	return lb, nil
}

// Create implements vapor.LoadBalancersClient.Create.
func (c *LoadBalancersClient) Create(ctx context.Context, request *vapor.LoadBalancerCreateRequest) (*vapor.LoadBalancer, error) {
	resp, err := c.httpClient.Post(ctx, "/load-balancers", request)
	if err != nil {
		return nil, fmt.Errorf("creating load balancer: %w", err)
	}

	lb, err := vapor.DecodeSingle[vapor.LoadBalancer](resp.Body, "load_balancer")
	if err != nil {
		return nil, fmt.Errorf("parsing load balancer: %w", err)
	}

	return lb, nil
}

// Update implements vapor.LoadBalancersClient.Update.
func (c *LoadBalancersClient) Update(ctx context.Context, loadBalancerID string, request *vapor.LoadBalancerUpdateRequest) error {
	_, err := c.httpClient.Patch(ctx, "/load-balancers/"+loadBalancerID, request)
	if err != nil {
		return fmt.Errorf("updating load balancer: %w", err)
	}

	return nil
}

// Delete implements vapor.LoadBalancersClient.Delete.
func (c *LoadBalancersClient) Delete(ctx context.Context, loadBalancerID string) error {
	_, err := c.httpClient.Delete(ctx, "/load-balancers/"+loadBalancerID)
	if err != nil {
		return fmt.Errorf("deleting load balancer: %w", err)
	}

	return nil
}
