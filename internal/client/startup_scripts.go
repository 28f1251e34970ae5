package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// StartupScriptsClient implements vapor.StartupScriptsClient.
type StartupScriptsClient struct {
	httpClient *http.Client
}

// NewStartupScriptsClient creates a new startup scripts client.
func NewStartupScriptsClient(httpClient *http.Client) *StartupScriptsClient {
	return &StartupScriptsClient{
		httpClient: httpClient,
	}
}

// List implements vapor.StartupScriptsClient.List.
func (c *StartupScriptsClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.StartupScript], error) {
	return listCollection[vapor.StartupScript](ctx, c.httpClient, "/startup-scripts", "startup_scripts", params)
}

// Get implements vapor.StartupScriptsClient.Get.
func (c *StartupScriptsClient) Get(ctx context.Context, scriptID string) (*vapor.StartupScript, error) {
	resp, err := c.httpClient.Get(ctx, "/startup-scripts/"+scriptID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting startup script: %w", err)
	}

	script, err := vapor.DecodeSingle[vapor.StartupScript](resp.Body, "startup_script")
	if err != nil {
		return nil, fmt.Errorf("parsing startup script: %w", err)
	}

	return script, nil
}

// Create implements vapor.StartupScriptsClient.Create.
func (c *StartupScriptsClient) Create(ctx context.Context, request *vapor.StartupScriptRequest) (*vapor.StartupScript, error) {
	resp, err := c.httpClient.Post(ctx, "/startup-scripts", request)
	if err != nil {
		return nil, fmt.Errorf("creating startup script: %w", err)
	}

	script, err := vapor.DecodeSingle[vapor.StartupScript](resp.Body, "startup_script")
	if err != nil {
		return nil, fmt.Errorf("parsing startup script: %w", err)
	}

	return script, nil
}

// Update implements vapor.StartupScriptsClient.Update.
func (c *StartupScriptsClient) Update(ctx context.Context, scriptID string, request *vapor.StartupScriptRequest) error {
	_, err := c.httpClient.Patch(ctx, "/startup-scripts/"+scriptID, request)
	if err != nil {
		return fmt.Errorf("updating startup script: %w", err)
	}

	return nil
}

// Delete implements vapor.StartupScriptsClient.Delete.
func (c *StartupScriptsClient) Delete(ctx context.Context, scriptID string) error {
	_, err := c.httpClient.Delete(ctx, "/startup-scripts/"+scriptID)
	if err != nil {
		return fmt.Errorf("deleting startup script: %w", err)
	}

	return nil
}
