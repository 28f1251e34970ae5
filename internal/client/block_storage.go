package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// BlockStorageClient implements vapor.BlockStorageClient.
type BlockStorageClient struct {
	httpClient *http.Client
}

// NewBlockStorageClient creates a new block storage client.
func NewBlockStorageClient(httpClient *http.Client) *BlockStorageClient {
	return &BlockStorageClient{
		httpClient: httpClient,
	}
}

// List implements vapor.BlockStorageClient.List.
func (c *BlockStorageClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.BlockStorage], error) {
	return listCollection[vapor.BlockStorage](ctx, c.httpClient, "/blocks", "blocks", params)
}

// Get implements vapor.BlockStorageClient.Get.
func (c *BlockStorageClient) Get(ctx context.Context, blockID string) (*vapor.BlockStorage, error) {
	resp, err := c.httpClient.Get(ctx, "/blocks/"+blockID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting block storage: %w", err)
	}

	block, err := vapor.DecodeSingle[vapor.BlockStorage](resp.Body, "block")
	if err != nil {
		return nil, fmt.Errorf("parsing block storage: %w", err)
	}

	return block, nil
}

// Create implements vapor.BlockStorageClient.Create.
func (c *BlockStorageClient) Create(ctx context.Context, request *vapor.BlockStorageCreateRequest) (*vapor.BlockStorage, error) {
	resp, err := c.httpClient.Post(ctx, "/blocks", request)
	if err != nil {
		return nil, fmt.Errorf("creating block storage: %w", err)
	}

	block, err := vapor.DecodeSingle[vapor.BlockStorage](resp.Body, "block")
	if err != nil {
		return nil, fmt.Errorf("parsing block storage: %w", err)
	}

	return block, nil
}

// Update implements vapor.BlockStorageClient.Update.
func (c *BlockStorageClient) Update(ctx context.Context, blockID string, request *vapor.BlockStorageUpdateRequest) error {
	_, err := c.httpClient.Patch(ctx, "/blocks/"+blockID, request)
	if err != nil {
		return fmt.Errorf("updating block storage: %w", err)
	}

	return nil
}

// Delete implements vapor.BlockStorageClient.Delete.
func (c *BlockStorageClient) Delete(ctx context.Context, blockID string) error {
	_, err := c.httpClient.Delete(ctx, "/blocks/"+blockID)
	if err != nil {
		return fmt.Errorf("deleting block storage: %w", err)
	}

	return nil
}

// Attach implements vapor.BlockStorageClient.Attach.
func (c *BlockStorageClient) Attach(ctx context.Context, blockID string, request *vapor.BlockStorageAttachRequest) error {
	_, err := c.httpClient.Post(ctx, "/blocks/"+blockID+"/attach", request)
	if err != nil {
		return fmt.Errorf("attaching block storage: %w", err)
	}

	return nil
}

// Detach implements vapor.BlockStorageClient.Detach.
func (c *BlockStorageClient) Detach(ctx context.Context, blockID string, request *vapor.BlockStorageDetachRequest) error {
	_, err := c.httpClient.Post(ctx, "/blocks/"+blockID+"/detach", request)
	if err != nil {
		return fmt.Errorf("detaching block storage: %w", err)
	}

	return nil
}
