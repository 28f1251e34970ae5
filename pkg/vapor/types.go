package vapor

// Account represents the account information of the current API key.
type Account struct {
	Name              string   `json:"name"                yaml:"name"`
	Email             string   `json:"email"               yaml:"email"`
	ACLs              []string `json:"acls"                yaml:"acls"`
	Balance           float64  `json:"balance"             yaml:"balance"`
	PendingCharges    float64  `json:"pending_charges"     yaml:"pending_charges"`
	LastPaymentDate   string   `json:"last_payment_date"   yaml:"last_payment_date"`
	LastPaymentAmount float64  `json:"last_payment_amount" yaml:"last_payment_amount"`
}

// Application represents a one-click or marketplace application image.
type Application struct {
	ID         int    `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	ShortName  string `json:"short_name"  yaml:"short_name"`
	DeployName string `json:"deploy_name" yaml:"deploy_name"`
	Type       string `json:"type"        yaml:"type"`
	Vendor     string `json:"vendor"      yaml:"vendor"`
	ImageID    string `json:"image_id"    yaml:"image_id"`
}

// Backup represents a scheduled automatic point-in-time image of an instance.
type Backup struct {
	ID          string `json:"id"           yaml:"id"`
	DateCreated string `json:"date_created" yaml:"date_created"`
	Description string `json:"description"  yaml:"description"`
	Size        int64  `json:"size"         yaml:"size"`
	Status      string `json:"status"       yaml:"status"`
}

// Bill represents one billing history item.
type Bill struct {
	ID          int     `json:"id"          yaml:"id"`
	Date        string  `json:"date"        yaml:"date"`
	Type        string  `json:"type"        yaml:"type"`
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount"      yaml:"amount"`
	Balance     float64 `json:"balance"     yaml:"balance"`
}

// Invoice represents a billing invoice.
type Invoice struct {
	ID          int     `json:"id"          yaml:"id"`
	Date        string  `json:"date"        yaml:"date"`
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount"      yaml:"amount"`
	Balance     float64 `json:"balance"     yaml:"balance"`
}

// InvoiceItem represents one line item of an invoice.
type InvoiceItem struct {
	Description string  `json:"description" yaml:"description"`
	Product     string  `json:"product"     yaml:"product"`
	StartDate   string  `json:"start_date"  yaml:"start_date"`
	EndDate     string  `json:"end_date"    yaml:"end_date"`
	Units       int     `json:"units"       yaml:"units"`
	UnitType    string  `json:"unit_type"   yaml:"unit_type"`
	UnitPrice   float64 `json:"unit_price"  yaml:"unit_price"`
	Total       float64 `json:"total"       yaml:"total"`
}

// BlockStorage represents a block storage volume.
type BlockStorage struct {
	ID                 string  `json:"id"                   yaml:"id"`
	DateCreated        string  `json:"date_created"         yaml:"date_created"`
	Cost               float64 `json:"cost"                 yaml:"cost"`
	Status             string  `json:"status"               yaml:"status"`
	SizeGB             int     `json:"size_gb"              yaml:"size_gb"`
	Region             string  `json:"region"               yaml:"region"`
	AttachedToInstance string  `json:"attached_to_instance" yaml:"attached_to_instance"`
	Label              string  `json:"label"                yaml:"label"`
	MountID            string  `json:"mount_id"             yaml:"mount_id"`
}

// BlockStorageCreateRequest is the payload for creating a block storage volume.
type BlockStorageCreateRequest struct {
	Region string `json:"region"          yaml:"region"`
	SizeGB int    `json:"size_gb"         yaml:"size_gb"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// BlockStorageUpdateRequest is the payload for updating a block storage volume.
type BlockStorageUpdateRequest struct {
	SizeGB int    `json:"size_gb,omitempty" yaml:"size_gb,omitempty"`
	Label  string `json:"label,omitempty"   yaml:"label,omitempty"`
}

// BlockStorageAttachRequest attaches a volume to an instance.
type BlockStorageAttachRequest struct {
	InstanceID string `json:"instance_id"    yaml:"instance_id"`
	Live       bool   `json:"live,omitempty" yaml:"live,omitempty"`
}

// BlockStorageDetachRequest detaches a volume from its instance.
type BlockStorageDetachRequest struct {
	Live bool `json:"live,omitempty" yaml:"live,omitempty"`
}

// DNSDomain represents a DNS domain hosted on Vapor Cloud nameservers.
type DNSDomain struct {
	Domain      string `json:"domain"       yaml:"domain"`
	DNSSec      string `json:"dns_sec"      yaml:"dns_sec"`
	DateCreated string `json:"date_created" yaml:"date_created"`
}

// DNSDomainCreateRequest is the payload for creating a DNS domain.
type DNSDomainCreateRequest struct {
	Domain string `json:"domain"            yaml:"domain"`
	IP     string `json:"ip,omitempty"      yaml:"ip,omitempty"`
	DNSSec string `json:"dns_sec,omitempty" yaml:"dns_sec,omitempty"`
}

// DNSSOA represents the SOA record of a domain.
type DNSSOA struct {
	NSPrimary string `json:"nsprimary" yaml:"nsprimary"`
	Email     string `json:"email"     yaml:"email"`
}

// DNSRecord represents a single DNS record.
type DNSRecord struct {
	ID       string `json:"id"       yaml:"id"`
	Type     string `json:"type"     yaml:"type"`
	Name     string `json:"name"     yaml:"name"`
	Data     string `json:"data"     yaml:"data"`
	Priority int    `json:"priority" yaml:"priority"`
	TTL      int    `json:"ttl"      yaml:"ttl"`
}

// DNSRecordCreateRequest is the payload for creating a DNS record.
type DNSRecordCreateRequest struct {
	Type     string `json:"type"               yaml:"type"`
	Name     string `json:"name"               yaml:"name"`
	Data     string `json:"data"               yaml:"data"`
	TTL      int    `json:"ttl,omitempty"      yaml:"ttl,omitempty"`
	Priority int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// DNSRecordUpdateRequest is the payload for updating a DNS record.
type DNSRecordUpdateRequest struct {
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Data     string `json:"data,omitempty"     yaml:"data,omitempty"`
	TTL      int    `json:"ttl,omitempty"      yaml:"ttl,omitempty"`
	Priority int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// FirewallGroup represents a firewall group.
type FirewallGroup struct {
	ID            string `json:"id"             yaml:"id"`
	Description   string `json:"description"    yaml:"description"`
	DateCreated   string `json:"date_created"   yaml:"date_created"`
	DateModified  string `json:"date_modified"  yaml:"date_modified"`
	InstanceCount int    `json:"instance_count" yaml:"instance_count"`
	RuleCount     int    `json:"rule_count"     yaml:"rule_count"`
	MaxRuleCount  int    `json:"max_rule_count" yaml:"max_rule_count"`
}

// FirewallGroupRequest is the payload for creating or updating a firewall group.
type FirewallGroupRequest struct {
	Description string `json:"description" yaml:"description"`
}

// FirewallRule represents a single rule in a firewall group.
type FirewallRule struct {
	ID         int    `json:"id"          yaml:"id"`
	Action     string `json:"action"      yaml:"action"`
	Protocol   string `json:"protocol"    yaml:"protocol"`
	Port       string `json:"port"        yaml:"port"`
	Subnet     string `json:"subnet"      yaml:"subnet"`
	SubnetSize int    `json:"subnet_size" yaml:"subnet_size"`
	Source     string `json:"source"      yaml:"source"`
	Notes      string `json:"notes"       yaml:"notes"`
	IPType     string `json:"ip_type"     yaml:"ip_type"`
}

// FirewallRuleCreateRequest is the payload for creating a firewall rule.
type FirewallRuleCreateRequest struct {
	IPType     string `json:"ip_type"          yaml:"ip_type"`
	Protocol   string `json:"protocol"         yaml:"protocol"`
	Subnet     string `json:"subnet"           yaml:"subnet"`
	SubnetSize int    `json:"subnet_size"      yaml:"subnet_size"`
	Port       string `json:"port,omitempty"   yaml:"port,omitempty"`
	Source     string `json:"source,omitempty" yaml:"source,omitempty"`
	Notes      string `json:"notes,omitempty"  yaml:"notes,omitempty"`
}

// V6Network represents an IPv6 network attached to an instance.
type V6Network struct {
	Network     string `json:"network"      yaml:"network"`
	MainIP      string `json:"main_ip"      yaml:"main_ip"`
	NetworkSize int    `json:"network_size" yaml:"network_size"`
}

// Instance represents a compute instance.
type Instance struct {
	ID               string      `json:"id"                yaml:"id"`
	OS               string      `json:"os"                yaml:"os"`
	RAM              int         `json:"ram"               yaml:"ram"`
	Disk             int         `json:"disk"              yaml:"disk"`
	MainIP           string      `json:"main_ip"           yaml:"main_ip"`
	VCPUCount        int         `json:"vcpu_count"        yaml:"vcpu_count"`
	Region           string      `json:"region"            yaml:"region"`
	Plan             string      `json:"plan"              yaml:"plan"`
	DateCreated      string      `json:"date_created"      yaml:"date_created"`
	Status           string      `json:"status"            yaml:"status"`
	AllowedBandwidth int         `json:"allowed_bandwidth" yaml:"allowed_bandwidth"`
	NetmaskV4        string      `json:"netmask_v4"        yaml:"netmask_v4"`
	GatewayV4        string      `json:"gateway_v4"        yaml:"gateway_v4"`
	PowerStatus      string      `json:"power_status"      yaml:"power_status"`
	ServerStatus     string      `json:"server_status"     yaml:"server_status"`
	V6Networks       []V6Network `json:"v6_networks"       yaml:"v6_networks"`
	V6MainIP         string      `json:"v6_main_ip"        yaml:"v6_main_ip"`
	V6NetworkSize    int         `json:"v6_network_size"   yaml:"v6_network_size"`
	Label            string      `json:"label"             yaml:"label"`
	InternalIP       string      `json:"internal_ip"       yaml:"internal_ip"`
	KVM              string      `json:"kvm"               yaml:"kvm"`
	Hostname         string      `json:"hostname"          yaml:"hostname"`
	Tag              string      `json:"tag"               yaml:"tag"`
	OSID             int         `json:"os_id"             yaml:"os_id"`
	AppID            int         `json:"app_id"            yaml:"app_id"`
	ImageID          string      `json:"image_id"          yaml:"image_id"`
	FirewallGroupID  string      `json:"firewall_group_id" yaml:"firewall_group_id"`
	Features         []string    `json:"features"          yaml:"features"`
	DefaultPassword  string      `json:"default_password,omitempty" yaml:"default_password,omitempty"`
}

// InstanceCreateRequest is the payload for deploying a new instance. Exactly
// one of OSID, ISOID, SnapshotID, AppID, or ImageID selects the boot source;
// the API rejects ambiguous combinations.
type InstanceCreateRequest struct {
	Region          string   `json:"region"                      yaml:"region"`
	Plan            string   `json:"plan"                        yaml:"plan"`
	OSID            int      `json:"os_id,omitempty"             yaml:"os_id,omitempty"`
	ISOID           string   `json:"iso_id,omitempty"            yaml:"iso_id,omitempty"`
	SnapshotID      string   `json:"snapshot_id,omitempty"       yaml:"snapshot_id,omitempty"`
	AppID           int      `json:"app_id,omitempty"            yaml:"app_id,omitempty"`
	ImageID         string   `json:"image_id,omitempty"          yaml:"image_id,omitempty"`
	ScriptID        string   `json:"script_id,omitempty"         yaml:"script_id,omitempty"`
	EnableIPv6      bool     `json:"enable_ipv6,omitempty"       yaml:"enable_ipv6,omitempty"`
	Backups         string   `json:"backups,omitempty"           yaml:"backups,omitempty"`
	DDOSProtection  bool     `json:"ddos_protection,omitempty"   yaml:"ddos_protection,omitempty"`
	SSHKeyIDs       []string `json:"sshkey_id,omitempty"         yaml:"sshkey_id,omitempty"`
	UserData        string   `json:"user_data,omitempty"         yaml:"user_data,omitempty"`
	FirewallGroupID string   `json:"firewall_group_id,omitempty" yaml:"firewall_group_id,omitempty"`
	ReservedIPv4    string   `json:"reserved_ipv4,omitempty"     yaml:"reserved_ipv4,omitempty"`
	Hostname        string   `json:"hostname,omitempty"          yaml:"hostname,omitempty"`
	Label           string   `json:"label,omitempty"             yaml:"label,omitempty"`
	Tag             string   `json:"tag,omitempty"               yaml:"tag,omitempty"`
	ActivationEmail bool     `json:"activation_email,omitempty"  yaml:"activation_email,omitempty"`
}

// InstanceUpdateRequest is the payload for updating an instance.
type InstanceUpdateRequest struct {
	Plan            string `json:"plan,omitempty"              yaml:"plan,omitempty"`
	Label           string `json:"label,omitempty"             yaml:"label,omitempty"`
	Tag             string `json:"tag,omitempty"               yaml:"tag,omitempty"`
	OSID            int    `json:"os_id,omitempty"             yaml:"os_id,omitempty"`
	AppID           int    `json:"app_id,omitempty"            yaml:"app_id,omitempty"`
	ImageID         string `json:"image_id,omitempty"          yaml:"image_id,omitempty"`
	EnableIPv6      bool   `json:"enable_ipv6,omitempty"       yaml:"enable_ipv6,omitempty"`
	Backups         string `json:"backups,omitempty"           yaml:"backups,omitempty"`
	FirewallGroupID string `json:"firewall_group_id,omitempty" yaml:"firewall_group_id,omitempty"`
	UserData        string `json:"user_data,omitempty"         yaml:"user_data,omitempty"`
	DDOSProtection  *bool  `json:"ddos_protection,omitempty"   yaml:"ddos_protection,omitempty"`
}

// Bandwidth represents one day of instance bandwidth usage.
type Bandwidth struct {
	IncomingBytes int64 `json:"incoming_bytes" yaml:"incoming_bytes"`
	OutgoingBytes int64 `json:"outgoing_bytes" yaml:"outgoing_bytes"`
}

// InstanceIPv4 represents an IPv4 address assigned to an instance.
type InstanceIPv4 struct {
	IP      string `json:"ip"      yaml:"ip"`
	Netmask string `json:"netmask" yaml:"netmask"`
	Gateway string `json:"gateway" yaml:"gateway"`
	Type    string `json:"type"    yaml:"type"`
	Reverse string `json:"reverse" yaml:"reverse"`
}

// InstanceIPv6 represents an IPv6 network assigned to an instance.
type InstanceIPv6 struct {
	IP          string `json:"ip"           yaml:"ip"`
	Network     string `json:"network"      yaml:"network"`
	NetworkSize int    `json:"network_size" yaml:"network_size"`
	Type        string `json:"type"         yaml:"type"`
}

// BackupSchedule represents an instance's automatic backup schedule.
type BackupSchedule struct {
	Enabled              bool   `json:"enabled"                 yaml:"enabled"`
	Type                 string `json:"type"                    yaml:"type"`
	NextScheduledTimeUTC string `json:"next_scheduled_time_utc" yaml:"next_scheduled_time_utc"`
	Hour                 int    `json:"hour"                    yaml:"hour"`
	Dow                  int    `json:"dow"                     yaml:"dow"`
	Dom                  int    `json:"dom"                     yaml:"dom"`
}

// BackupScheduleRequest is the payload for setting an instance's backup schedule.
type BackupScheduleRequest struct {
	Type string `json:"type"           yaml:"type"`
	Hour int    `json:"hour,omitempty" yaml:"hour,omitempty"`
	Dow  int    `json:"dow,omitempty"  yaml:"dow,omitempty"`
	Dom  int    `json:"dom,omitempty"  yaml:"dom,omitempty"`
}

// ISOStatus reports the ISO currently attached to an instance.
type ISOStatus struct {
	ISOID string `json:"iso_id" yaml:"iso_id"`
	State string `json:"state"  yaml:"state"`
}

// ISO represents an uploaded ISO image.
type ISO struct {
	ID          string `json:"id"           yaml:"id"`
	DateCreated string `json:"date_created" yaml:"date_created"`
	Filename    string `json:"filename"     yaml:"filename"`
	Size        int64  `json:"size"         yaml:"size"`
	MD5Sum      string `json:"md5sum"       yaml:"md5sum"`
	SHA512Sum   string `json:"sha512sum"    yaml:"sha512sum"`
	Status      string `json:"status"       yaml:"status"`
}

// ISOCreateRequest uploads an ISO from a URL.
type ISOCreateRequest struct {
	URL string `json:"url" yaml:"url"`
}

// PublicISO represents an entry of the public ISO library.
type PublicISO struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	MD5Sum      string `json:"md5sum"      yaml:"md5sum"`
}

// KubernetesNodePool describes a node pool of a managed cluster.
type KubernetesNodePool struct {
	ID           string           `json:"id"            yaml:"id"`
	DateCreated  string           `json:"date_created"  yaml:"date_created"`
	DateUpdated  string           `json:"date_updated"  yaml:"date_updated"`
	Label        string           `json:"label"         yaml:"label"`
	Tag          string           `json:"tag"           yaml:"tag"`
	Plan         string           `json:"plan"          yaml:"plan"`
	Status       string           `json:"status"        yaml:"status"`
	NodeQuantity int              `json:"node_quantity" yaml:"node_quantity"`
	Nodes        []KubernetesNode `json:"nodes"         yaml:"nodes"`
}

// KubernetesNode is one node of a node pool.
type KubernetesNode struct {
	ID          string `json:"id"           yaml:"id"`
	Label       string `json:"label"        yaml:"label"`
	DateCreated string `json:"date_created" yaml:"date_created"`
	Status      string `json:"status"       yaml:"status"`
}

// KubernetesCluster represents a managed Kubernetes cluster.
type KubernetesCluster struct {
	ID            string               `json:"id"             yaml:"id"`
	Label         string               `json:"label"          yaml:"label"`
	DateCreated   string               `json:"date_created"   yaml:"date_created"`
	ClusterSubnet string               `json:"cluster_subnet" yaml:"cluster_subnet"`
	ServiceSubnet string               `json:"service_subnet" yaml:"service_subnet"`
	IP            string               `json:"ip"             yaml:"ip"`
	Endpoint      string               `json:"endpoint"       yaml:"endpoint"`
	Version       string               `json:"version"        yaml:"version"`
	Region        string               `json:"region"         yaml:"region"`
	Status        string               `json:"status"         yaml:"status"`
	NodePools     []KubernetesNodePool `json:"node_pools"     yaml:"node_pools"`
}

// KubernetesNodePoolRequest describes a node pool for cluster creation or update.
type KubernetesNodePoolRequest struct {
	NodeQuantity int    `json:"node_quantity" yaml:"node_quantity"`
	Label        string `json:"label"         yaml:"label"`
	Plan         string `json:"plan"          yaml:"plan"`
	Tag          string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// KubernetesClusterCreateRequest is the payload for creating a cluster.
type KubernetesClusterCreateRequest struct {
	Label     string                      `json:"label,omitempty" yaml:"label,omitempty"`
	Region    string                      `json:"region"          yaml:"region"`
	Version   string                      `json:"version"         yaml:"version"`
	NodePools []KubernetesNodePoolRequest `json:"node_pools"      yaml:"node_pools"`
}

// KubernetesClusterUpdateRequest is the payload for updating a cluster.
type KubernetesClusterUpdateRequest struct {
	Label string `json:"label" yaml:"label"`
}

// KubernetesConfig carries a cluster's base64-encoded kubeconfig.
type KubernetesConfig struct {
	KubeConfig string `json:"kube_config" yaml:"kube_config"`
}

// LoadBalancerGenericInfo holds the balancing configuration of a load balancer.
type LoadBalancerGenericInfo struct {
	BalancingAlgorithm string            `json:"balancing_algorithm" yaml:"balancing_algorithm"`
	SSLRedirect        bool              `json:"ssl_redirect"        yaml:"ssl_redirect"`
	StickySessions     map[string]string `json:"sticky_sessions"     yaml:"sticky_sessions"`
	ProxyProtocol      bool              `json:"proxy_protocol"      yaml:"proxy_protocol"`
	PrivateNetwork     string            `json:"private_network"     yaml:"private_network"`
}

// LoadBalancerHealthCheck holds the health check settings of a load balancer.
type LoadBalancerHealthCheck struct {
	Protocol           string `json:"protocol"            yaml:"protocol"`
	Port               int    `json:"port"                yaml:"port"`
	Path               string `json:"path"                yaml:"path"`
	CheckInterval      int    `json:"check_interval"      yaml:"check_interval"`
	ResponseTimeout    int    `json:"response_timeout"    yaml:"response_timeout"`
	UnhealthyThreshold int    `json:"unhealthy_threshold" yaml:"unhealthy_threshold"`
	HealthyThreshold   int    `json:"healthy_threshold"   yaml:"healthy_threshold"`
}

// LoadBalancerForwardingRule maps a frontend port to a backend port.
type LoadBalancerForwardingRule struct {
	ID               string `json:"id"                yaml:"id"`
	FrontendProtocol string `json:"frontend_protocol" yaml:"frontend_protocol"`
	FrontendPort     int    `json:"frontend_port"     yaml:"frontend_port"`
	BackendProtocol  string `json:"backend_protocol"  yaml:"backend_protocol"`
	BackendPort      int    `json:"backend_port"      yaml:"backend_port"`
}

// LoadBalancerFirewallRule restricts which sources may reach the load balancer.
type LoadBalancerFirewallRule struct {
	ID     string `json:"id"      yaml:"id"`
	Port   int    `json:"port"    yaml:"port"`
	Source string `json:"source"  yaml:"source"`
	IPType string `json:"ip_type" yaml:"ip_type"`
}

// LoadBalancer represents a managed load balancer.
type LoadBalancer struct {
	ID              string                       `json:"id"               yaml:"id"`
	DateCreated     string                       `json:"date_created"     yaml:"date_created"`
	Region          string                       `json:"region"           yaml:"region"`
	Label           string                       `json:"label"            yaml:"label"`
	Status          string                       `json:"status"           yaml:"status"`
	IPv4            string                       `json:"ipv4"             yaml:"ipv4"`
	IPv6            string                       `json:"ipv6"             yaml:"ipv6"`
	GenericInfo     LoadBalancerGenericInfo      `json:"generic_info"     yaml:"generic_info"`
	HealthCheck     LoadBalancerHealthCheck      `json:"health_check"     yaml:"health_check"`
	HasSSL          bool                         `json:"has_ssl"          yaml:"has_ssl"`
	ForwardingRules []LoadBalancerForwardingRule `json:"forwarding_rules" yaml:"forwarding_rules"`
	Instances       []string                     `json:"instances"        yaml:"instances"`
	FirewallRules   []LoadBalancerFirewallRule   `json:"firewall_rules"   yaml:"firewall_rules"`
}

// LoadBalancerCreateRequest is the payload for creating a load balancer.
type LoadBalancerCreateRequest struct {
	Region             string                       `json:"region"                        yaml:"region"`
	Label              string                       `json:"label,omitempty"               yaml:"label,omitempty"`
	BalancingAlgorithm string                       `json:"balancing_algorithm,omitempty" yaml:"balancing_algorithm,omitempty"`
	SSLRedirect        bool                         `json:"ssl_redirect,omitempty"        yaml:"ssl_redirect,omitempty"`
	ProxyProtocol      bool                         `json:"proxy_protocol,omitempty"      yaml:"proxy_protocol,omitempty"`
	HealthCheck        *LoadBalancerHealthCheck     `json:"health_check,omitempty"        yaml:"health_check,omitempty"`
	ForwardingRules    []LoadBalancerForwardingRule `json:"forwarding_rules,omitempty"    yaml:"forwarding_rules,omitempty"`
	Instances          []string                     `json:"instances,omitempty"           yaml:"instances,omitempty"`
}

// LoadBalancerUpdateRequest is the payload for updating a load balancer.
type LoadBalancerUpdateRequest struct {
	Label              string                       `json:"label,omitempty"               yaml:"label,omitempty"`
	BalancingAlgorithm string                       `json:"balancing_algorithm,omitempty" yaml:"balancing_algorithm,omitempty"`
	SSLRedirect        *bool                        `json:"ssl_redirect,omitempty"        yaml:"ssl_redirect,omitempty"`
	ProxyProtocol      *bool                        `json:"proxy_protocol,omitempty"      yaml:"proxy_protocol,omitempty"`
	HealthCheck        *LoadBalancerHealthCheck     `json:"health_check,omitempty"        yaml:"health_check,omitempty"`
	ForwardingRules    []LoadBalancerForwardingRule `json:"forwarding_rules,omitempty"    yaml:"forwarding_rules,omitempty"`
	Instances          []string                     `json:"instances,omitempty"           yaml:"instances,omitempty"`
}

// OS represents an operating system image available for installation.
type OS struct {
	ID     int    `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Arch   string `json:"arch"   yaml:"arch"`
	Family string `json:"family" yaml:"family"`
}

// Plan is a particular configuration of vCPU, RAM, SSD, and bandwidth.
type Plan struct {
	ID          string   `json:"id"           yaml:"id"`
	VCPUCount   int      `json:"vcpu_count"   yaml:"vcpu_count"`
	RAM         int      `json:"ram"          yaml:"ram"`
	Disk        int      `json:"disk"         yaml:"disk"`
	DiskCount   int      `json:"disk_count"   yaml:"disk_count"`
	Bandwidth   int      `json:"bandwidth"    yaml:"bandwidth"`
	MonthlyCost float64  `json:"monthly_cost" yaml:"monthly_cost"`
	Type        string   `json:"type"         yaml:"type"`
	Locations   []string `json:"locations"    yaml:"locations"`
}

// MetalPlan is a bare metal machine configuration.
type MetalPlan struct {
	ID          string   `json:"id"           yaml:"id"`
	CPUCount    int      `json:"cpu_count"    yaml:"cpu_count"`
	CPUModel    string   `json:"cpu_model"    yaml:"cpu_model"`
	CPUThreads  int      `json:"cpu_threads"  yaml:"cpu_threads"`
	RAM         int      `json:"ram"          yaml:"ram"`
	Disk        int      `json:"disk"         yaml:"disk"`
	DiskCount   int      `json:"disk_count"   yaml:"disk_count"`
	Bandwidth   int      `json:"bandwidth"    yaml:"bandwidth"`
	MonthlyCost float64  `json:"monthly_cost" yaml:"monthly_cost"`
	Type        string   `json:"type"         yaml:"type"`
	Locations   []string `json:"locations"    yaml:"locations"`
}

// Region represents a deployment region.
type Region struct {
	ID        string   `json:"id"        yaml:"id"`
	City      string   `json:"city"      yaml:"city"`
	Country   string   `json:"country"   yaml:"country"`
	Continent string   `json:"continent" yaml:"continent"`
	Options   []string `json:"options"   yaml:"options"`
}

// ReservedIP represents a reserved IP address.
type ReservedIP struct {
	ID         string `json:"id"          yaml:"id"`
	Region     string `json:"region"      yaml:"region"`
	IPType     string `json:"ip_type"     yaml:"ip_type"`
	Subnet     string `json:"subnet"      yaml:"subnet"`
	SubnetSize int    `json:"subnet_size" yaml:"subnet_size"`
	Label      string `json:"label"       yaml:"label"`
	InstanceID string `json:"instance_id" yaml:"instance_id"`
}

// ReservedIPCreateRequest is the payload for reserving a new IP.
type ReservedIPCreateRequest struct {
	Region string `json:"region"          yaml:"region"`
	IPType string `json:"ip_type"         yaml:"ip_type"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ReservedIPConvertRequest converts an existing instance IP into a reserved IP.
type ReservedIPConvertRequest struct {
	IPAddress string `json:"ip_address"      yaml:"ip_address"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Snapshot represents a point-in-time image of an instance.
type Snapshot struct {
	ID          string `json:"id"           yaml:"id"`
	DateCreated string `json:"date_created" yaml:"date_created"`
	Description string `json:"description"  yaml:"description"`
	Size        int64  `json:"size"         yaml:"size"`
	Status      string `json:"status"       yaml:"status"`
	OSID        int    `json:"os_id"        yaml:"os_id"`
	AppID       int    `json:"app_id"       yaml:"app_id"`
}

// SnapshotCreateRequest is the payload for snapshotting an instance.
type SnapshotCreateRequest struct {
	InstanceID  string `json:"instance_id"           yaml:"instance_id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SnapshotCreateFromURLRequest creates a snapshot from a RAW image URL.
type SnapshotCreateFromURLRequest struct {
	URL string `json:"url" yaml:"url"`
}

// SnapshotUpdateRequest is the payload for updating a snapshot.
type SnapshotUpdateRequest struct {
	Description string `json:"description" yaml:"description"`
}

// SSHKey represents an SSH public key on the account.
type SSHKey struct {
	ID          string `json:"id"           yaml:"id"`
	DateCreated string `json:"date_created" yaml:"date_created"`
	Name        string `json:"name"         yaml:"name"`
	SSHKey      string `json:"ssh_key"      yaml:"ssh_key"`
}

// SSHKeyRequest is the payload for creating or updating an SSH key.
type SSHKeyRequest struct {
	Name   string `json:"name"    yaml:"name"`
	SSHKey string `json:"ssh_key" yaml:"ssh_key"`
}

// StartupScript represents a boot or PXE script.
type StartupScript struct {
	ID           string `json:"id"               yaml:"id"`
	DateCreated  string `json:"date_created"     yaml:"date_created"`
	DateModified string `json:"date_modified"    yaml:"date_modified"`
	Name         string `json:"name"             yaml:"name"`
	Type         string `json:"type"             yaml:"type"`
	Script       string `json:"script,omitempty" yaml:"script,omitempty"`
}

// StartupScriptRequest is the payload for creating or updating a startup
// script. Script must be base64 encoded.
type StartupScriptRequest struct {
	Name   string `json:"name"           yaml:"name"`
	Script string `json:"script"         yaml:"script"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// User represents a sub-user of the account.
type User struct {
	ID         string   `json:"id"          yaml:"id"`
	Name       string   `json:"name"        yaml:"name"`
	Email      string   `json:"email"       yaml:"email"`
	APIEnabled bool     `json:"api_enabled" yaml:"api_enabled"`
	ACLs       []string `json:"acls"        yaml:"acls"`
}

// UserCreateRequest is the payload for creating a sub-user.
type UserCreateRequest struct {
	Name       string   `json:"name"                  yaml:"name"`
	Email      string   `json:"email"                 yaml:"email"`
	Password   string   `json:"password"              yaml:"password"`
	APIEnabled *bool    `json:"api_enabled,omitempty" yaml:"api_enabled,omitempty"`
	ACLs       []string `json:"acls,omitempty"        yaml:"acls,omitempty"`
}

// UserUpdateRequest is the payload for updating a sub-user.
type UserUpdateRequest struct {
	Name       string   `json:"name,omitempty"        yaml:"name,omitempty"`
	Email      string   `json:"email,omitempty"       yaml:"email,omitempty"`
	Password   string   `json:"password,omitempty"    yaml:"password,omitempty"`
	APIEnabled *bool    `json:"api_enabled,omitempty" yaml:"api_enabled,omitempty"`
	ACLs       []string `json:"acls,omitempty"        yaml:"acls,omitempty"`
}
