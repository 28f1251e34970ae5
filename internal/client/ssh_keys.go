package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// SSHKeysClient implements vapor.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *http.Client
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *http.Client) *SSHKeysClient {
	return &SSHKeysClient{
		httpClient: httpClient,
	}
}

// List implements vapor.SSHKeysClient.List.
func (c *SSHKeysClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.SSHKey], error) {
	return listCollection[vapor.SSHKey](ctx, c.httpClient, "/ssh-keys", "ssh_keys", params)
}

// Get implements vapor.SSHKeysClient.Get.
func (c *SSHKeysClient) Get(ctx context.Context, keyID string) (*vapor.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, "/ssh-keys/"+keyID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SSH key: %w", err)
	}

	key, err := vapor.DecodeSingle[vapor.SSHKey](resp.Body, "ssh_key")
	if err != nil {
		return nil, fmt.Errorf("parsing SSH key: %w", err)
	}

	return key, nil
}

// Create implements vapor.SSHKeysClient.Create.
func (c *SSHKeysClient) Create(ctx context.Context, request *vapor.SSHKeyRequest) (*vapor.SSHKey, error) {
	resp, err := c.httpClient.Post(ctx, "/ssh-keys", request)
	if err != nil {
		return nil, fmt.Errorf("creating SSH key: %w", err)
	}

	key, err := vapor.DecodeSingle[vapor.SSHKey](resp.Body, "ssh_key")
	if err != nil {
		return nil, fmt.Errorf("parsing SSH key: %w", err)
	}

	return key, nil
}

// Update implements vapor.SSHKeysClient.Update.
func (c *SSHKeysClient) Update(ctx context.Context, keyID string, request *vapor.SSHKeyRequest) error {
	_, err := c.httpClient.Patch(ctx, "/ssh-keys/"+keyID, request)
	if err != nil {
		return fmt.Errorf("updating SSH key: %w", err)
	}

	return nil
}

// Delete implements vapor.SSHKeysClient.Delete.
func (c *SSHKeysClient) Delete(ctx context.Context, keyID string) error {
	_, err := c.httpClient.Delete(ctx, "/ssh-keys/"+keyID)
	if err != nil {
		return fmt.Errorf("deleting SSH key: %w", err)
	}

	return nil
}
