package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// ReservedIPsClient implements vapor.ReservedIPsClient.
type ReservedIPsClient struct {
	httpClient *http.Client
}

// NewReservedIPsClient creates a new reserved IPs client.
func NewReservedIPsClient(httpClient *http.Client) *ReservedIPsClient {
	return &ReservedIPsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.ReservedIPsClient.List.
func (c *ReservedIPsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.ReservedIP], error) {
	return listCollection[vapor.ReservedIP](ctx, c.httpClient, "/reserved-ips", "reserved_ips", params)
}

// Get implements vapor.ReservedIPsClient.Get.
func (c *ReservedIPsClient) Get(ctx context.Context, reservedIPID string) (*vapor.ReservedIP, error) {
	resp, err := c.httpClient.Get(ctx, "/reserved-ips/"+reservedIPID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting reserved IP: %w", err)
	}

	ip, err := vapor.DecodeSingle[vapor.ReservedIP](resp.Body, "reserved_ip")
	if err != nil {
		return nil, fmt.Errorf("parsing reserved IP: %w", err)
	}

	return ip, nil
}

// Create implements vapor.ReservedIPsClient.Create.
func (c *ReservedIPsClient) Create(ctx context.Context, request *vapor.ReservedIPCreateRequest) (*vapor.ReservedIP, error) {
	resp, err := c.httpClient.Post(ctx, "/reserved-ips", request)
	if err != nil {
		return nil, fmt.Errorf("creating reserved IP: %w", err)
	}

	ip, err := vapor.DecodeSingle[vapor.ReservedIP](resp.Body, "reserved_ip")
	if err != nil {
		return nil, fmt.Errorf("parsing reserved IP: %w", err)
	}

	return ip, nil
}

// Delete implements vapor.ReservedIPsClient.Delete.
func (c *ReservedIPsClient) Delete(ctx context.Context, reservedIPID string) error {
	_, err := c.httpClient.Delete(ctx, "/reserved-ips/"+reservedIPID)
	if err != nil {
		return fmt.Errorf("deleting reserved IP: %w", err)
	}

	return nil
}

// Attach implements vapor.ReservedIPsClient.Attach.
func (c *ReservedIPsClient) Attach(ctx context.Context, reservedIPID, instanceID string) error {
	body := map[string]string{"instance_id": instanceID}

	_, err := c.httpClient.Post(ctx, "/reserved-ips/"+reservedIPID+"/attach", body)
	if err != nil {
		return fmt.Errorf("attaching reserved IP: %w", err)
	}

	return nil
}

// Detach implements vapor.ReservedIPsClient.Detach.
func (c *ReservedIPsClient) Detach(ctx context.Context, reservedIPID string) error {
	_, err := c.httpClient.Post(ctx, "/reserved-ips/"+reservedIPID+"/detach", nil)
	if err != nil {
		return fmt.Errorf("detaching reserved IP: %w", err)
	}

	return nil
}

// Convert implements vapor.ReservedIPsClient.Convert.
func (c *ReservedIPsClient) Convert(ctx context.Context, request *vapor.ReservedIPConvertRequest) (*vapor.ReservedIP, error) {
	resp, err := c.httpClient.Post(ctx, "/reserved-ips/convert", request)
	if err != nil {
		return nil, fmt.Errorf("converting reserved IP: %w", err)
	}

	ip, err := vapor.DecodeSingle[vapor.ReservedIP](resp.Body, "reserved_ip")
	if err != nil {
		return nil, fmt.Errorf("parsing reserved IP: %w", err)
	}

	return ip, nil
}
