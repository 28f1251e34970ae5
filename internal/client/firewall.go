package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// FirewallClient implements vapor.FirewallClient.
type FirewallClient struct {
	httpClient *http.Client
}

// NewFirewallClient creates a new firewall client.
func NewFirewallClient(httpClient *http.Client) *FirewallClient {
	return &FirewallClient{
		httpClient: httpClient,
	}
}

// ListGroups implements vapor.FirewallClient.ListGroups.
func (c *FirewallClient) ListGroups(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.FirewallGroup], error) {
	return listCollection[vapor.FirewallGroup](ctx, c.httpClient, "/firewalls", "firewall_groups", params)
}

// GetGroup implements vapor.FirewallClient.GetGroup.
func (c *FirewallClient) GetGroup(ctx context.Context, groupID string) (*vapor.FirewallGroup, error) {
	resp, err := c.httpClient.Get(ctx, "/firewalls/"+groupID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting firewall group: %w", err)
	}

	group, err := vapor.DecodeSingle[vapor.FirewallGroup](resp.Body, "firewall_group")
	if err != nil {
		return nil, fmt.Errorf("parsing firewall group: %w", err)
	}

	return group, nil
}

// CreateGroup implements vapor.FirewallClient.CreateGroup.
func (c *FirewallClient) CreateGroup(ctx context.Context, request *vapor.FirewallGroupRequest) (*vapor.FirewallGroup, error) {
	resp, err := c.httpClient.Post(ctx, "/firewalls", request)
	if err != nil {
		return nil, fmt.Errorf("creating firewall group: %w", err)
	}

	group, err := vapor.DecodeSingle[vapor.FirewallGroup](resp.Body, "firewall_group")
	if err != nil {
		return nil, fmt.Errorf("parsing firewall group: %w", err)
	}

	return group, nil
}

// UpdateGroup implements vapor.FirewallClient.UpdateGroup.
func (c *FirewallClient) UpdateGroup(ctx context.Context, groupID string, request *vapor.FirewallGroupRequest) error {
	_, err := c.httpClient.Put(ctx, "/firewalls/"+groupID, request)
	if err != nil {
		return fmt.Errorf("updating firewall group: %w", err)
	}

	return nil
}

// DeleteGroup implements vapor.FirewallClient.DeleteGroup.
func (c *FirewallClient) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := c.httpClient.Delete(ctx, "/firewalls/"+groupID)
	if err != nil {
		return fmt.Errorf("deleting firewall group: %w", err)
	}

	return nil
}

// ListRules implements vapor.FirewallClient.ListRules.
func (c *FirewallClient) ListRules(ctx context.Context, groupID string, params *vapor.QueryParams) (*vapor.Collection[vapor.FirewallRule], error) {
	return listCollection[vapor.FirewallRule](ctx, c.httpClient, "/firewalls/"+groupID+"/rules", "firewall_rules", params)
}

// GetRule implements vapor.FirewallClient.GetRule.
func (c *FirewallClient) GetRule(ctx context.Context, groupID string, ruleID int) (*vapor.FirewallRule, error) {
	resp, err := c.httpClient.Get(ctx, "/firewalls/"+groupID+"/rules/"+strconv.Itoa(ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting firewall rule: %w", err)
	}

	rule, err := vapor.DecodeSingle[vapor.FirewallRule](resp.Body, "firewall_rule")
	if err != nil {
		return nil, fmt.Errorf("parsing firewall rule: %w", err)
	}

	return rule, nil
}

// CreateRule implements vapor.FirewallClient.CreateRule.
func (c *FirewallClient) CreateRule(ctx context.Context, groupID string, request *vapor.FirewallRuleCreateRequest) (*vapor.FirewallRule, error) {
	resp, err := c.httpClient.Post(ctx, "/firewalls/"+groupID+"/rules", request)
	if err != nil {
		return nil, fmt.Errorf("creating firewall rule: %w", err)
	}

	rule, err := vapor.DecodeSingle[vapor.FirewallRule](resp.Body, "firewall_rule")
	if err != nil {
		return nil, fmt.Errorf("parsing firewall rule: %w", err)
	}

	return rule, nil
}

// DeleteRule implements vapor.FirewallClient.DeleteRule.
func (c *FirewallClient) DeleteRule(ctx context.Context, groupID string, ruleID int) error {
	_, err := c.httpClient.Delete(ctx, "/firewalls/"+groupID+"/rules/"+strconv.Itoa(ruleID))
	if err != nil {
		return fmt.Errorf("deleting firewall rule: %w", err)
	}

	return nil
}
