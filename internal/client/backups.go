package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// BackupsClient implements vapor.BackupsClient.
type BackupsClient struct {
	httpClient *http.Client
}

// NewBackupsClient creates a new backups client.
func NewBackupsClient(httpClient *http.Client) *BackupsClient {
	return &BackupsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.BackupsClient.List.
func (c *BackupsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Backup], error) {
	return listCollection[vapor.Backup](ctx, c.httpClient, "/backups", "backups", params)
}

// Get implements vapor.BackupsClient.Get.
func (c *BackupsClient) Get(ctx context.Context, backupID string) (*vapor.Backup, error) {
	resp, err := c.httpClient.Get(ctx, "/backups/"+backupID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting backup: %w", err)
	}

	backup, err := vapor.DecodeSingle[vapor.Backup](resp.Body, "backup")
	if err != nil {
		return nil, fmt.Errorf("parsing backup: %w", err)
	}

	return backup, nil
}
