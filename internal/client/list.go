package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// listCollection builds a lazy collection over a list endpoint. The fetch
// closure binds the endpoint path; the collection varies only the query
// parameters between page requests.
func listCollection[T any](ctx context.Context, httpClient *http.Client, path, resourceKey string, params *vapor.QueryParams) (*vapor.Collection[T], error) {
	fetch := func(ctx context.Context, values url.Values) ([]byte, error) {
		resp, err := httpClient.Get(ctx, path, values)
		if err != nil {
			return nil, err
		}

		return resp.Body, nil
	}

	var opts []vapor.CollectionOption
	if params != nil {
		opts = params.CollectionOptions()
	}

	collection, err := vapor.NewCollection[T](ctx, fetch, resourceKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", resourceKey, err)
	}

	return collection, nil
}
