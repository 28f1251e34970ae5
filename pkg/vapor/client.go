package vapor

import (
	"context"
	"time"
)

// ComputeClients provides access to compute resource clients.
type ComputeClients interface {
	Instances() InstancesClient
	Plans() PlansClient
	Regions() RegionsClient
	OperatingSystems() OperatingSystemsClient
	Applications() ApplicationsClient
	ISO() ISOClient
	Backups() BackupsClient
	Snapshots() SnapshotsClient
	StartupScripts() StartupScriptsClient
	SSHKeys() SSHKeysClient
}

// NetworkClients provides access to networking resource clients.
type NetworkClients interface {
	DNS() DNSClient
	Firewall() FirewallClient
	LoadBalancers() LoadBalancersClient
	ReservedIPs() ReservedIPsClient
}

// StorageClients provides access to storage resource clients.
type StorageClients interface {
	BlockStorage() BlockStorageClient
}

// PlatformClients provides access to managed platform resource clients.
type PlatformClients interface {
	Kubernetes() KubernetesClient
}

// AccountClients provides access to account-level resource clients.
type AccountClients interface {
	Account() AccountClient
	Users() UsersClient
	Billing() BillingClient
}

// Client is the full Vapor Cloud API surface.
type Client interface {
	ComputeClients
	NetworkClients
	StorageClients
	PlatformClients
	AccountClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vapor.Client.
//
// # Authentication
//
// Every request carries the API key as a Bearer token. If APIKey is empty,
// the concrete client falls back to the VAPOR_API_KEY environment variable;
// construction fails if neither is set.
//
// # Request spacing and retries
//
// The transport spaces consecutive requests by RequestInterval (default
// 100ms) to stay under the provider's rate limit, and retries transient
// failures (>=500, 429, connection errors) with exponential backoff tuned by
// RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIEndpoint: base URL for the Vapor Cloud API. vaporclient.New
	// normalizes the value: a trailing slash is trimmed and "https://" is
	// added if no scheme is present. Defaults to the public endpoint when
	// empty.
	APIEndpoint string

	// APIKey: personal access token sent as a Bearer token.
	APIKey string

	// HTTPTimeout: per-request timeout applied by the transport. Most
	// callers should also bound calls with a context.
	HTTPTimeout time.Duration

	// RequestInterval: minimum spacing between consecutive requests. If 0,
	// the default 100ms interval is used. Negative disables the gate.
	RequestInterval time.Duration

	// RetryMax: maximum number of retries for transient failures. If 0, a
	// sensible default is used.
	RetryMax int

	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Cache: optional response cache for GET requests. Use NewCacheFromConfig
	// or NewMemoryCache to build one; nil disables caching.
	Cache Cache

	// CacheTTL: how long cached GET responses stay fresh. Only used when
	// Cache is set; defaults to 5 minutes.
	CacheTTL time.Duration
}

// AccountClient provides access to account information.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
}
