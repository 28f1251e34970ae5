package vapor

import "context"

// InstancesClient provides access to compute instance operations.
type InstancesClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Instance], error)
	Get(ctx context.Context, instanceID string) (*Instance, error)
	Create(ctx context.Context, request *InstanceCreateRequest) (*Instance, error)
	Update(ctx context.Context, instanceID string, request *InstanceUpdateRequest) (*Instance, error)
	Delete(ctx context.Context, instanceID string) error
	Start(ctx context.Context, instanceID string) error
	Halt(ctx context.Context, instanceID string) error
	Reboot(ctx context.Context, instanceID string) error
	Reinstall(ctx context.Context, instanceID string, hostname string) (*Instance, error)
	Bandwidth(ctx context.Context, instanceID string) (map[string]Bandwidth, error)
	ListIPv4(ctx context.Context, instanceID string, params *QueryParams) (*Collection[InstanceIPv4], error)
	ListIPv6(ctx context.Context, instanceID string, params *QueryParams) (*Collection[InstanceIPv6], error)
	GetBackupSchedule(ctx context.Context, instanceID string) (*BackupSchedule, error)
	SetBackupSchedule(ctx context.Context, instanceID string, request *BackupScheduleRequest) error
	GetISOStatus(ctx context.Context, instanceID string) (*ISOStatus, error)
	AttachISO(ctx context.Context, instanceID, isoID string) error
	DetachISO(ctx context.Context, instanceID string) error
}

// PlansClient provides access to plan listings.
type PlansClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Plan], error)
	ListMetal(ctx context.Context, params *QueryParams) (*Collection[MetalPlan], error)
}

// RegionsClient provides access to region listings.
type RegionsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Region], error)
	Availability(ctx context.Context, regionID string, planType string) ([]string, error)
}

// OperatingSystemsClient provides access to OS image listings.
type OperatingSystemsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[OS], error)
}

// ApplicationsClient provides access to one-click application listings.
type ApplicationsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Application], error)
}

// ISOClient provides access to ISO image operations.
type ISOClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[ISO], error)
	Get(ctx context.Context, isoID string) (*ISO, error)
	Create(ctx context.Context, request *ISOCreateRequest) (*ISO, error)
	Delete(ctx context.Context, isoID string) error
	ListPublic(ctx context.Context, params *QueryParams) (*Collection[PublicISO], error)
}

// BackupsClient provides access to automatic backups.
type BackupsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Backup], error)
	Get(ctx context.Context, backupID string) (*Backup, error)
}

// SnapshotsClient provides access to snapshot operations.
type SnapshotsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Snapshot], error)
	Get(ctx context.Context, snapshotID string) (*Snapshot, error)
	Create(ctx context.Context, request *SnapshotCreateRequest) (*Snapshot, error)
	CreateFromURL(ctx context.Context, request *SnapshotCreateFromURLRequest) (*Snapshot, error)
	Update(ctx context.Context, snapshotID string, request *SnapshotUpdateRequest) error
	Delete(ctx context.Context, snapshotID string) error
}

// StartupScriptsClient provides access to startup script operations.
type StartupScriptsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[StartupScript], error)
	Get(ctx context.Context, scriptID string) (*StartupScript, error)
	Create(ctx context.Context, request *StartupScriptRequest) (*StartupScript, error)
	Update(ctx context.Context, scriptID string, request *StartupScriptRequest) error
	Delete(ctx context.Context, scriptID string) error
}

// SSHKeysClient provides access to SSH key operations.
type SSHKeysClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[SSHKey], error)
	Get(ctx context.Context, keyID string) (*SSHKey, error)
	Create(ctx context.Context, request *SSHKeyRequest) (*SSHKey, error)
	Update(ctx context.Context, keyID string, request *SSHKeyRequest) error
	Delete(ctx context.Context, keyID string) error
}

// DNSClient provides access to DNS domain and record operations.
type DNSClient interface {
	ListDomains(ctx context.Context, params *QueryParams) (*Collection[DNSDomain], error)
	GetDomain(ctx context.Context, domain string) (*DNSDomain, error)
	CreateDomain(ctx context.Context, request *DNSDomainCreateRequest) (*DNSDomain, error)
	DeleteDomain(ctx context.Context, domain string) error
	GetSOA(ctx context.Context, domain string) (*DNSSOA, error)
	UpdateSOA(ctx context.Context, domain string, soa *DNSSOA) error
	GetDNSSec(ctx context.Context, domain string) ([]string, error)
	ListRecords(ctx context.Context, domain string, params *QueryParams) (*Collection[DNSRecord], error)
	GetRecord(ctx context.Context, domain, recordID string) (*DNSRecord, error)
	CreateRecord(ctx context.Context, domain string, request *DNSRecordCreateRequest) (*DNSRecord, error)
	UpdateRecord(ctx context.Context, domain, recordID string, request *DNSRecordUpdateRequest) error
	DeleteRecord(ctx context.Context, domain, recordID string) error
}

// FirewallClient provides access to firewall group and rule operations.
type FirewallClient interface {
	ListGroups(ctx context.Context, params *QueryParams) (*Collection[FirewallGroup], error)
	GetGroup(ctx context.Context, groupID string) (*FirewallGroup, error)
	CreateGroup(ctx context.Context, request *FirewallGroupRequest) (*FirewallGroup, error)
	UpdateGroup(ctx context.Context, groupID string, request *FirewallGroupRequest) error
	DeleteGroup(ctx context.Context, groupID string) error
	ListRules(ctx context.Context, groupID string, params *QueryParams) (*Collection[FirewallRule], error)
	GetRule(ctx context.Context, groupID string, ruleID int) (*FirewallRule, error)
	CreateRule(ctx context.Context, groupID string, request *FirewallRuleCreateRequest) (*FirewallRule, error)
	DeleteRule(ctx context.Context, groupID string, ruleID int) error
}

// LoadBalancersClient provides access to load balancer operations.
type LoadBalancersClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[LoadBalancer], error)
	Get(ctx context.Context, loadBalancerID string) (*LoadBalancer, error)
	Create(ctx context.Context, request *LoadBalancerCreateRequest) (*LoadBalancer, error)
	Update(ctx context.Context, loadBalancerID string, request *LoadBalancerUpdateRequest) error
	Delete(ctx context.Context, loadBalancerID string) error
}

// ReservedIPsClient provides access to reserved IP operations.
type ReservedIPsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[ReservedIP], error)
	Get(ctx context.Context, reservedIPID string) (*ReservedIP, error)
	Create(ctx context.Context, request *ReservedIPCreateRequest) (*ReservedIP, error)
	Delete(ctx context.Context, reservedIPID string) error
	Attach(ctx context.Context, reservedIPID, instanceID string) error
	Detach(ctx context.Context, reservedIPID string) error
	Convert(ctx context.Context, request *ReservedIPConvertRequest) (*ReservedIP, error)
}

// BlockStorageClient provides access to block storage operations.
type BlockStorageClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[BlockStorage], error)
	Get(ctx context.Context, blockID string) (*BlockStorage, error)
	Create(ctx context.Context, request *BlockStorageCreateRequest) (*BlockStorage, error)
	Update(ctx context.Context, blockID string, request *BlockStorageUpdateRequest) error
	Delete(ctx context.Context, blockID string) error
	Attach(ctx context.Context, blockID string, request *BlockStorageAttachRequest) error
	Detach(ctx context.Context, blockID string, request *BlockStorageDetachRequest) error
}

// KubernetesClient provides access to managed Kubernetes operations.
type KubernetesClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[KubernetesCluster], error)
	Get(ctx context.Context, clusterID string) (*KubernetesCluster, error)
	Create(ctx context.Context, request *KubernetesClusterCreateRequest) (*KubernetesCluster, error)
	Update(ctx context.Context, clusterID string, request *KubernetesClusterUpdateRequest) error
	Delete(ctx context.Context, clusterID string) error
	GetConfig(ctx context.Context, clusterID string) (*KubernetesConfig, error)
	ListNodePools(ctx context.Context, clusterID string, params *QueryParams) (*Collection[KubernetesNodePool], error)
	GetNodePool(ctx context.Context, clusterID, nodePoolID string) (*KubernetesNodePool, error)
	CreateNodePool(ctx context.Context, clusterID string, request *KubernetesNodePoolRequest) (*KubernetesNodePool, error)
	UpdateNodePool(ctx context.Context, clusterID, nodePoolID string, request *KubernetesNodePoolRequest) (*KubernetesNodePool, error)
	DeleteNodePool(ctx context.Context, clusterID, nodePoolID string) error
}

// UsersClient provides access to sub-user operations.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[User], error)
	Get(ctx context.Context, userID string) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, userID string, request *UserUpdateRequest) error
	Delete(ctx context.Context, userID string) error
}

// BillingClient provides read-only access to billing information.
type BillingClient interface {
	ListHistory(ctx context.Context, params *QueryParams) (*Collection[Bill], error)
	ListInvoices(ctx context.Context, params *QueryParams) (*Collection[Invoice], error)
	GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error)
	ListInvoiceItems(ctx context.Context, invoiceID string, params *QueryParams) (*Collection[InvoiceItem], error)
}
