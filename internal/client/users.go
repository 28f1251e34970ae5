package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// UsersClient implements vapor.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements vapor.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.User], error) {
	return listCollection[vapor.User](ctx, c.httpClient, "/users", "users", params)
}

// Get implements vapor.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*vapor.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	user, err := vapor.DecodeSingle[vapor.User](resp.Body, "user")
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return user, nil
}

// Create implements vapor.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *vapor.UserCreateRequest) (*vapor.User, error) {
	resp, err := c.httpClient.Post(ctx, "/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	user, err := vapor.DecodeSingle[vapor.User](resp.Body, "user")
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return user, nil
}

// Update implements vapor.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID string, request *vapor.UserUpdateRequest) error {
	_, err := c.httpClient.Patch(ctx, "/users/"+userID, request)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// Delete implements vapor.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID string) error {
	_, err := c.httpClient.Delete(ctx, "/users/"+userID)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
