package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// AccountClient implements vapor.AccountClient.
type AccountClient struct {
	httpClient *http.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *http.Client) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
	}
}

// Get implements vapor.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*vapor.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/account", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	account, err := vapor.DecodeSingle[vapor.Account](resp.Body, "account")
	if err != nil {
		return nil, fmt.Errorf("parsing account: %w", err)
	}

	return account, nil
}
