package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// ISOClient implements vapor.ISOClient.
type ISOClient struct {
	httpClient *http.Client
}

// NewISOClient creates a new ISO client.
func NewISOClient(httpClient *http.Client) *ISOClient {
	return &ISOClient{
		httpClient: httpClient,
	}
}

// List implements vapor.ISOClient.List.
func (c *ISOClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.ISO], error) {
	return listCollection[vapor.ISO](ctx, c.httpClient, "/iso", "isos", params)
}

// Get implements vapor.ISOClient.Get.
func (c *ISOClient) Get(ctx context.Context, isoID string) (*vapor.ISO, error) {
	resp, err := c.httpClient.Get(ctx, "/iso/"+isoID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ISO: %w", err)
	}

	iso, err := vapor.DecodeSingle[vapor.ISO](resp.Body, "iso")
	if err != nil {
		return nil, fmt.Errorf("parsing ISO: %w", err)
	}

	return iso, nil
}

// Create implements vapor.ISOClient.Create.
func (c *ISOClient) Create(ctx context.Context, request *vapor.ISOCreateRequest) (*vapor.ISO, error) {
	resp, err := c.httpClient.Post(ctx, "/iso", request)
	if err != nil {
		return nil, fmt.Errorf("creating ISO: %w", err)
	}

	iso, err := vapor.DecodeSingle[vapor.ISO](resp.Body, "iso")
	if err != nil {
		return nil, fmt.Errorf("parsing ISO: %w", err)
	}

	return iso, nil
}

// Delete implements vapor.ISOClient.Delete.
func (c *ISOClient) Delete(ctx context.Context, isoID string) error {
	_, err := c.httpClient.Delete(ctx, "/iso/"+isoID)
	if err != nil {
		return fmt.Errorf("deleting ISO: %w", err)
	}

	return nil
}

// ListPublic implements vapor.ISOClient.ListPublic.
func (c *ISOClient) ListPublic(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.PublicISO], error) {
	return listCollection[vapor.PublicISO](ctx, c.httpClient, "/iso-public", "public_isos", params)
}
