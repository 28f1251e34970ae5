package constants

import "time"

// API defaults.
const (
	// DefaultAPIEndpoint is the public Vapor Cloud API base URL.
	DefaultAPIEndpoint = "https://api.vaporcloud.com/v2"

	// APIKeyEnvVar is the environment variable checked when no API key is
	// configured.
	APIKeyEnvVar = "VAPOR_API_KEY"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Request gating.
const (
	// MinRequestInterval is the minimum spacing between consecutive API
	// requests, to stay under the provider's rate limit.
	MinRequestInterval = 100 * time.Millisecond
)

// Pagination limits.
const (
	// DefaultPageSize is the number of items the API returns per page when
	// per_page is not sent.
	DefaultPageSize = 100

	// MaxPageSize is the largest per_page value the API accepts.
	MaxPageSize = 500
)

// Cache sizing.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute
)
