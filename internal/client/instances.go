package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// InstancesClient implements vapor.InstancesClient.
type InstancesClient struct {
	httpClient *http.Client
}

// NewInstancesClient creates a new instances client.
func NewInstancesClient(httpClient *http.Client) *InstancesClient {
	return &InstancesClient{
		httpClient: httpClient,
	}
}

// List implements vapor.InstancesClient.List.
func (c *InstancesClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Instance], error) {
	return listCollection[vapor.Instance](ctx, c.httpClient, "/instances", "instances", params)
}

// Get implements vapor.InstancesClient.Get.
func (c *InstancesClient) Get(ctx context.Context, instanceID string) (*vapor.Instance, error) {
	resp, err := c.httpClient.Get(ctx, "/instances/"+instanceID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting instance: %w", err)
	}

	instance, err := vapor.DecodeSingle[vapor.Instance](resp.Body, "instance")
	if err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}

	return instance, nil
}

// Create implements vapor.InstancesClient.Create.
func (c *InstancesClient) Create(ctx context.Context, request *vapor.InstanceCreateRequest) (*vapor.Instance, error) {
	resp, err := c.httpClient.Post(ctx, "/instances", request)
	if err != nil {
		return nil, fmt.Errorf("creating instance: %w", err)
	}

	instance, err := vapor.DecodeSingle[vapor.Instance](resp.Body, "instance")
	if err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}

	return instance, nil
}

// Update implements vapor.InstancesClient.Update.
func (c *InstancesClient) Update(ctx context.Context, instanceID string, request *vapor.InstanceUpdateRequest) (*vapor.Instance, error) {
	resp, err := c.httpClient.Patch(ctx, "/instances/"+instanceID, request)
	if err != nil {
		return nil, fmt.Errorf("updating instance: %w", err)
	}

	instance, err := vapor.DecodeSingle[vapor.Instance](resp.Body, "instance")
	if err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}

	return instance, nil
}

// Delete implements vapor.InstancesClient.Delete.
func (c *InstancesClient) Delete(ctx context.Context, instanceID string) error {
	_, err := c.httpClient.Delete(ctx, "/instances/"+instanceID)
	if err != nil {
		return fmt.Errorf("deleting instance: %w", err)
	}

	return nil
}

// Start implements vapor.InstancesClient.Start.
func (c *InstancesClient) Start(ctx context.Context, instanceID string) error {
	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/start", nil)
	if err != nil {
		return fmt.Errorf("starting instance: %w", err)
	}

	return nil
}

// Halt implements vapor.InstancesClient.Halt.
func (c *InstancesClient) Halt(ctx context.Context, instanceID string) error {
	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/halt", nil)
	if err != nil {
		return fmt.Errorf("halting instance: %w", err)
	}

	return nil
}

// Reboot implements vapor.InstancesClient.Reboot.
func (c *InstancesClient) Reboot(ctx context.Context, instanceID string) error {
	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/reboot", nil)
	if err != nil {
		return fmt.Errorf("rebooting instance: %w", err)
	}

	return nil
}

// Reinstall implements vapor.InstancesClient.Reinstall.
func (c *InstancesClient) Reinstall(ctx context.Context, instanceID string, hostname string) (*vapor.Instance, error) {
	body := map[string]string{}
	if hostname != "" {
		body["hostname"] = hostname
	}

	resp, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/reinstall", body)
	if err != nil {
		return nil, fmt.Errorf("reinstalling instance: %w", err)
	}

	instance, err := vapor.DecodeSingle[vapor.Instance](resp.Body, "instance")
	if err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}

	return instance, nil
}

// Bandwidth implements vapor.InstancesClient.Bandwidth.
func (c *InstancesClient) Bandwidth(ctx context.Context, instanceID string) (map[string]vapor.Bandwidth, error) {
	resp, err := c.httpClient.Get(ctx, "/instances/"+instanceID+"/bandwidth", nil)
	if err != nil {
		return nil, fmt.Errorf("getting instance bandwidth: %w", err)
	}

	payload, err := vapor.UnwrapSingle(resp.Body, "bandwidth")
	if err != nil {
		return nil, fmt.Errorf("parsing bandwidth: %w", err)
	}

	var bandwidth map[string]vapor.Bandwidth
	if err := json.Unmarshal(payload, &bandwidth); err != nil {
		return nil, fmt.Errorf("parsing bandwidth: %w", err)
	}

	return bandwidth, nil
}

// ListIPv4 implements vapor.InstancesClient.ListIPv4.
func (c *InstancesClient) ListIPv4(ctx context.Context, instanceID string, params *vapor.QueryParams) (*vapor.Collection[vapor.InstanceIPv4], error) {
	return listCollection[vapor.InstanceIPv4](ctx, c.httpClient, "/instances/"+instanceID+"/ipv4", "ipv4s", params)
}

// ListIPv6 implements vapor.InstancesClient.ListIPv6.
func (c *InstancesClient) ListIPv6(ctx context.Context, instanceID string, params *vapor.QueryParams) (*vapor.Collection[vapor.InstanceIPv6], error) {
	return listCollection[vapor.InstanceIPv6](ctx, c.httpClient, "/instances/"+instanceID+"/ipv6", "ipv6s", params)
}

// GetBackupSchedule implements vapor.InstancesClient.GetBackupSchedule.
func (c *InstancesClient) GetBackupSchedule(ctx context.Context, instanceID string) (*vapor.BackupSchedule, error) {
	resp, err := c.httpClient.Get(ctx, "/instances/"+instanceID+"/backup-schedule", nil)
	if err != nil {
		return nil, fmt.Errorf("getting backup schedule: %w", err)
	}

	schedule, err := vapor.DecodeSingle[vapor.BackupSchedule](resp.Body, "backup_schedule")
	if err != nil {
		return nil, fmt.Errorf("parsing backup schedule: %w", err)
	}

	return schedule, nil
}

// SetBackupSchedule implements vapor.InstancesClient.SetBackupSchedule.
func (c *InstancesClient) SetBackupSchedule(ctx context.Context, instanceID string, request *vapor.BackupScheduleRequest) error {
	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/backup-schedule", request)
	if err != nil {
		return fmt.Errorf("setting backup schedule: %w", err)
	}

	return nil
}

// GetISOStatus implements vapor.InstancesClient.GetISOStatus.
func (c *InstancesClient) GetISOStatus(ctx context.Context, instanceID string) (*vapor.ISOStatus, error) {
	resp, err := c.httpClient.Get(ctx, "/instances/"+instanceID+"/iso", nil)
	if err != nil {
		return nil, fmt.Errorf("getting ISO status: %w", err)
	}

	status, err := vapor.DecodeSingle[vapor.ISOStatus](resp.Body, "iso_status")
	if err != nil {
		return nil, fmt.Errorf("parsing ISO status: %w", err)
	}

	return status, nil
}

// AttachISO implements vapor.InstancesClient.AttachISO.
func (c *InstancesClient) AttachISO(ctx context.Context, instanceID, isoID string) error {
	body := map[string]string{"iso_id": isoID}

	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/iso/attach", body)
	if err != nil {
		return fmt.Errorf("attaching ISO: %w", err)
	}

	return nil
}

// DetachISO implements vapor.InstancesClient.DetachISO.
func (c *InstancesClient) DetachISO(ctx context.Context, instanceID string) error {
	_, err := c.httpClient.Post(ctx, "/instances/"+instanceID+"/iso/detach", nil)
	if err != nil {
		return fmt.Errorf("detaching ISO: %w", err)
	}

	return nil
}
