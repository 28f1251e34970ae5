// Package vapor provides types, interfaces, and helpers for working with the
// Vapor Cloud REST API v2.
//
// # Overview
//
// The vapor package defines the domain types (e.g., Instance, Region, Plan,
// SSHKey) and the interfaces for resource-oriented clients (e.g.,
// InstancesClient, DNSClient). A concrete implementation of these clients is
// provided by the vaporclient package, which wires configuration, transport,
// request spacing, and authentication. Most consumers should import
// vaporclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/vapor-io/vapor-client/pkg/vapor"
//	  "github.com/vapor-io/vapor-client/pkg/vaporclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vaporclient.New(ctx, &vapor.Config{APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  instances, err := cli.Instances().List(ctx, vapor.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = instances
//	}
//
// # Queries and pagination
//
// List endpoints return a Collection, a lazy view over the remote paginated
// list. Pages are fetched on demand as the collection is indexed, sliced, or
// iterated, and cached for later accesses:
//
//	instances, _ := cli.Instances().List(ctx, nil)
//	it := instances.Iterator(ctx)
//	for {
//	  instance, err := it.Next()
//	  if errors.Is(err, vapor.ErrNoMoreItems) { break }
//	  if err != nil { /* handle error */ }
//	  _ = instance
//	}
//
// or fetch everything at once:
//
//	all, err := instances.All(ctx)
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
// The pagination layer reports exhaustion through standard signals
// (ErrIndexOutOfRange, ErrNoMoreItems) and malformed envelopes through
// ErrUnexpectedPayload.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (for logging, auth
// headers) and a pluggable Cache abstraction with in-memory and NATS KV
// backends. The vaporclient package composes these pieces for a sensible
// default client; applications with advanced needs can also use these
// primitives directly.
package vapor
