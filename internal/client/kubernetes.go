package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// KubernetesClient implements vapor.KubernetesClient.
type KubernetesClient struct {
	httpClient *http.Client
}

// NewKubernetesClient creates a new Kubernetes client.
func NewKubernetesClient(httpClient *http.Client) *KubernetesClient {
	return &KubernetesClient{
		httpClient: httpClient,
	}
}

// List implements vapor.KubernetesClient.List.
func (c *KubernetesClient) List(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.KubernetesCluster], error) {
	return listCollection[vapor.KubernetesCluster](ctx, c.httpClient, "/kubernetes/clusters", "vke_clusters", params)
}

// Get implements vapor.KubernetesClient.Get.
func (c *KubernetesClient) Get(ctx context.Context, clusterID string) (*vapor.KubernetesCluster, error) {
	resp, err := c.httpClient.Get(ctx, "/kubernetes/clusters/"+clusterID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cluster: %w", err)
	}

	cluster, err := vapor.DecodeSingle[vapor.KubernetesCluster](resp.Body, "vke_cluster")
	if err != nil {
		return nil, fmt.Errorf("parsing cluster: %w", err)
	}

	return cluster, nil
}

// Create implements vapor.KubernetesClient.Create.
func (c *KubernetesClient) Create(ctx context.Context, request *vapor.KubernetesClusterCreateRequest) (*vapor.KubernetesCluster, error) {
	resp, err := c.httpClient.Post(ctx, "/kubernetes/clusters", request)
	if err != nil {
		return nil, fmt.Errorf("creating cluster: %w", err)
	}

	cluster, err := vapor.DecodeSingle[vapor.KubernetesCluster](resp.Body, "vke_cluster")
	if err != nil {
		return nil, fmt.Errorf("parsing cluster: %w", err)
	}

	return cluster, nil
}

// Update implements vapor.KubernetesClient.Update.
func (c *KubernetesClient) Update(ctx context.Context, clusterID string, request *vapor.KubernetesClusterUpdateRequest) error {
	_, err := c.httpClient.Put(ctx, "/kubernetes/clusters/"+clusterID, request)
	if err != nil {
		return fmt.Errorf("updating cluster: %w", err)
	}

	return nil
}

// Delete implements vapor.KubernetesClient.Delete.
func (c *KubernetesClient) Delete(ctx context.Context, clusterID string) error {
	_, err := c.httpClient.Delete(ctx, "/kubernetes/clusters/"+clusterID)
	if err != nil {
		return fmt.Errorf("deleting cluster: %w", err)
	}

	return nil
}

// GetConfig implements vapor.KubernetesClient.GetConfig.
func (c *KubernetesClient) GetConfig(ctx context.Context, clusterID string) (*vapor.KubernetesConfig, error) {
	resp, err := c.httpClient.Get(ctx, "/kubernetes/clusters/"+clusterID+"/config", nil)
	if err != nil {
		return nil, fmt.Errorf("getting cluster config: %w", err)
	}

	var config vapor.KubernetesConfig
	if err := json.Unmarshal(resp.Body, &config); err != nil {
		return nil, fmt.Errorf("parsing cluster config: %w", err)
	}

	return &config, nil
}

// ListNodePools implements vapor.KubernetesClient.ListNodePools.
func (c *KubernetesClient) ListNodePools(ctx context.Context, clusterID string, params *vapor.QueryParams) (*vapor.Collection[vapor.KubernetesNodePool], error) {
	return listCollection[vapor.KubernetesNodePool](ctx, c.httpClient, "/kubernetes/clusters/"+clusterID+"/node-pools", "node_pools", params)
}

// GetNodePool implements vapor.KubernetesClient.GetNodePool.
func (c *KubernetesClient) GetNodePool(ctx context.Context, clusterID, nodePoolID string) (*vapor.KubernetesNodePool, error) {
	resp, err := c.httpClient.Get(ctx, "/kubernetes/clusters/"+clusterID+"/node-pools/"+nodePoolID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting node pool: %w", err)
	}

	pool, err := vapor.DecodeSingle[vapor.KubernetesNodePool](resp.Body, "node_pool")
	if err != nil {
		return nil, fmt.Errorf("parsing node pool: %w", err)
	}

	return pool, nil
}

// CreateNodePool implements vapor.KubernetesClient.CreateNodePool.
func (c *KubernetesClient) CreateNodePool(ctx context.Context, clusterID string, request *vapor.KubernetesNodePoolRequest) (*vapor.KubernetesNodePool, error) {
	resp, err := c.httpClient.Post(ctx, "/kubernetes/clusters/"+clusterID+"/node-pools", request)
	if err != nil {
		return nil, fmt.Errorf("creating node pool: %w", err)
	}

	pool, err := vapor.DecodeSingle[vapor.KubernetesNodePool](resp.Body, "node_pool")
	if err != nil {
		return nil, fmt.Errorf("parsing node pool: %w", err)
	}

	return pool, nil
}

// UpdateNodePool implements vapor.KubernetesClient.UpdateNodePool.
func (c *KubernetesClient) UpdateNodePool(ctx context.Context, clusterID, nodePoolID string, request *vapor.KubernetesNodePoolRequest) (*vapor.KubernetesNodePool, error) {
	resp, err := c.httpClient.Patch(ctx, "/kubernetes/clusters/"+clusterID+"/node-pools/"+nodePoolID, request)
	if err != nil {
		return nil, fmt.Errorf("updating node pool: %w", err)
	}

	pool, err := vapor.DecodeSingle[vapor.KubernetesNodePool](resp.Body, "node_pool")
	if err != nil {
		return nil, fmt.Errorf("parsing node pool: %w", err)
	}

	return pool, nil
}

// DeleteNodePool implements vapor.KubernetesClient.DeleteNodePool.
func (c *KubernetesClient) DeleteNodePool(ctx context.Context, clusterID, nodePoolID string) error {
	_, err := c.httpClient.Delete(ctx, "/kubernetes/clusters/"+clusterID+"/node-pools/"+nodePoolID)
	if err != nil {
		return fmt.Errorf("deleting node pool: %w", err)
	}

	return nil
}
