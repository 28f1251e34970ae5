// Package client implements the vapor.Client interface on top of the HTTP
// transport, one file per resource.
package client

import (
	"context"
	"os"

	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// Client implements the vapor.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     vapor.Logger

	// Resource clients
	account        vapor.AccountClient
	applications   vapor.ApplicationsClient
	backups        vapor.BackupsClient
	billing        vapor.BillingClient
	blockStorage   vapor.BlockStorageClient
	dns            vapor.DNSClient
	firewall       vapor.FirewallClient
	instances      vapor.InstancesClient
	iso            vapor.ISOClient
	kubernetes     vapor.KubernetesClient
	loadBalancers  vapor.LoadBalancersClient
	os             vapor.OperatingSystemsClient
	plans          vapor.PlansClient
	regions        vapor.RegionsClient
	reservedIPs    vapor.ReservedIPsClient
	snapshots      vapor.SnapshotsClient
	sshKeys        vapor.SSHKeysClient
	startupScripts vapor.StartupScriptsClient
	users          vapor.UsersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *vapor.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RequestInterval != 0 {
		httpOpts = append(httpOpts, http.WithRequestInterval(config.RequestInterval))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		httpOpts = append(httpOpts, http.WithCache(config.Cache, config.CacheTTL))
	}

	return httpOpts
}

// New creates a new Vapor Cloud API client.
func New(ctx context.Context, config *vapor.Config) (*Client, error) {
	if config == nil {
		return nil, vapor.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(constants.APIKeyEnvVar)
	}

	if apiKey == "" {
		return nil, vapor.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(endpoint, apiKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.account = NewAccountClient(c.httpClient)
	c.applications = NewApplicationsClient(c.httpClient)
	c.backups = NewBackupsClient(c.httpClient)
	c.billing = NewBillingClient(c.httpClient)
	c.blockStorage = NewBlockStorageClient(c.httpClient)
	c.dns = NewDNSClient(c.httpClient)
	c.firewall = NewFirewallClient(c.httpClient)
	c.instances = NewInstancesClient(c.httpClient)
	c.iso = NewISOClient(c.httpClient)
	c.kubernetes = NewKubernetesClient(c.httpClient)
	c.loadBalancers = NewLoadBalancersClient(c.httpClient)
	c.os = NewOperatingSystemsClient(c.httpClient)
	c.plans = NewPlansClient(c.httpClient)
	c.regions = NewRegionsClient(c.httpClient)
	c.reservedIPs = NewReservedIPsClient(c.httpClient)
	c.snapshots = NewSnapshotsClient(c.httpClient)
	c.sshKeys = NewSSHKeysClient(c.httpClient)
	c.startupScripts = NewStartupScriptsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}

// Resource client accessors

// Account implements vapor.Client.Account.
func (c *Client) Account() vapor.AccountClient {
	return c.account
}

// Applications implements vapor.Client.Applications.
func (c *Client) Applications() vapor.ApplicationsClient {
	return c.applications
}

// Backups implements vapor.Client.Backups.
func (c *Client) Backups() vapor.BackupsClient {
	return c.backups
}

// Billing implements vapor.Client.Billing.
func (c *Client) Billing() vapor.BillingClient {
	return c.billing
}

// BlockStorage implements vapor.Client.BlockStorage.
func (c *Client) BlockStorage() vapor.BlockStorageClient {
	return c.blockStorage
}

// DNS implements vapor.Client.DNS.
func (c *Client) DNS() vapor.DNSClient {
	return c.dns
}

// Firewall implements vapor.Client.Firewall.
func (c *Client) Firewall() vapor.FirewallClient {
	return c.firewall
}

// Instances implements vapor.Client.Instances.
func (c *Client) Instances() vapor.InstancesClient {
	return c.instances
}

// ISO implements vapor.Client.ISO.
func (c *Client) ISO() vapor.ISOClient {
	return c.iso
}

// Kubernetes implements vapor.Client.Kubernetes.
func (c *Client) Kubernetes() vapor.KubernetesClient {
	return c.kubernetes
}

// LoadBalancers implements vapor.Client.LoadBalancers.
func (c *Client) LoadBalancers() vapor.LoadBalancersClient {
	return c.loadBalancers
}

// OperatingSystems implements vapor.Client.OperatingSystems.
func (c *Client) OperatingSystems() vapor.OperatingSystemsClient {
	return c.os
}

// Plans implements vapor.Client.Plans.
func (c *Client) Plans() vapor.PlansClient {
	return c.plans
}

// Regions implements vapor.Client.Regions.
func (c *Client) Regions() vapor.RegionsClient {
	return c.regions
}

// ReservedIPs implements vapor.Client.ReservedIPs.
func (c *Client) ReservedIPs() vapor.ReservedIPsClient {
	return c.reservedIPs
}

// Snapshots implements vapor.Client.Snapshots.
func (c *Client) Snapshots() vapor.SnapshotsClient {
	return c.snapshots
}

// SSHKeys implements vapor.Client.SSHKeys.
func (c *Client) SSHKeys() vapor.SSHKeysClient {
	return c.sshKeys
}

// StartupScripts implements vapor.Client.StartupScripts.
func (c *Client) StartupScripts() vapor.StartupScriptsClient {
	return c.startupScripts
}

// Users implements vapor.Client.Users.
func (c *Client) Users() vapor.UsersClient {
	return c.users
}
