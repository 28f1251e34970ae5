// Package vaporclient provides the main entry point for creating Vapor Cloud API clients.
package vaporclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/vapor-io/vapor-client/internal/client"
	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// New creates a new Vapor Cloud API client from the given configuration.
//
// The API key is taken from config.APIKey, falling back to the VAPOR_API_KEY
// environment variable. The endpoint defaults to the public API when unset.
func New(ctx context.Context, config *vapor.Config) (vapor.Client, error) {
	if config == nil {
		return nil, vapor.ErrConfigRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client for the public API using the given key.
func NewWithAPIKey(ctx context.Context, apiKey string) (vapor.Client, error) {
	return New(ctx, &vapor.Config{APIKey: apiKey})
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
