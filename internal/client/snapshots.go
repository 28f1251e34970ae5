package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// SnapshotsClient implements vapor.SnapshotsClient.
type SnapshotsClient struct {
	httpClient *http.Client
}

// NewSnapshotsClient creates a new snapshots client.
func NewSnapshotsClient(httpClient *http.Client) *SnapshotsClient {
	return &SnapshotsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.SnapshotsClient.List.
func (c *SnapshotsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Snapshot], error) {
	return listCollection[vapor.Snapshot](ctx, c.httpClient, "/snapshots", "snapshots", params)
}

// Get implements vapor.SnapshotsClient.Get.
func (c *SnapshotsClient) Get(ctx context.Context, snapshotID string) (*vapor.Snapshot, error) {
	resp, err := c.httpClient.Get(ctx, "/snapshots/"+snapshotID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	snapshot, err := vapor.DecodeSingle[vapor.Snapshot](resp.Body, "snapshot")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return snapshot, nil
}

// Create implements vapor.SnapshotsClient.Create.
func (c *SnapshotsClient) Create(ctx context.Context, request *vapor.SnapshotCreateRequest) (*vapor.Snapshot, error) {
	resp, err := c.httpClient.Post(ctx, "/snapshots", request)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot: %w", err)
	}

	snapshot, err := vapor.DecodeSingle[vapor.Snapshot](resp.Body, "snapshot")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return snapshot, nil
}

// CreateFromURL implements vapor.SnapshotsClient.CreateFromURL.
func (c *SnapshotsClient) CreateFromURL(ctx context.Context, request *vapor.SnapshotCreateFromURLRequest) (*vapor.Snapshot, error) {
	resp, err := c.httpClient.Post(ctx, "/snapshots/create-from-url", request)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot from URL: %w", err)
	}

	snapshot, err := vapor.DecodeSingle[vapor.Snapshot](resp.Body, "snapshot")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	return snapshot, nil
}

// Update implements vapor.SnapshotsClient.Update.
func (c *SnapshotsClient) Update(ctx context.Context, snapshotID string, request *vapor.SnapshotUpdateRequest) error {
	_, err := c.httpClient.Put(ctx, "/snapshots/"+snapshotID, request)
	if err != nil {
		return fmt.Errorf("updating snapshot: %w", err)
	}

	return nil
}

// Delete implements vapor.SnapshotsClient.Delete.
func (c *SnapshotsClient) Delete(ctx context.Context, snapshotID string) error {
	_, err := c.httpClient.Delete(ctx, "/snapshots/"+snapshotID)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	return nil
}
