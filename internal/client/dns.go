package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// DNSClient implements vapor.DNSClient.
type DNSClient struct {
	httpClient *http.Client
}

// NewDNSClient creates a new DNS client.
func NewDNSClient(httpClient *http.Client) *DNSClient {
	return &DNSClient{
		httpClient: httpClient,
	}
}

// ListDomains implements vapor.DNSClient.ListDomains.
func (c *DNSClient) ListDomains(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.DNSDomain], error) {
	return listCollection[vapor.DNSDomain](ctx, c.httpClient, "/domains", "domains", params)
}

// GetDomain implements vapor.DNSClient.GetDomain.
func (c *DNSClient) GetDomain(ctx context.Context, domain string) (*vapor.DNSDomain, error) {
	resp, err := c.httpClient.Get(ctx, "/domains/"+domain, nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain: %w", err)
	}

	result, err := vapor.DecodeSingle[vapor.DNSDomain](resp.Body, "domain")
	if err != nil {
		return nil, fmt.Errorf("parsing domain: %w", err)
	}

	return result, nil
}

// CreateDomain implements vapor.DNSClient.CreateDomain.
func (c *DNSClient) CreateDomain(ctx context.Context, request *vapor.DNSDomainCreateRequest) (*vapor.DNSDomain, error) {
	resp, err := c.httpClient.Post(ctx, "/domains", request)
	if err != nil {
		return nil, fmt.Errorf("creating domain: %w", err)
	}

	result, err := vapor.DecodeSingle[vapor.DNSDomain](resp.Body, "domain")
	if err != nil {
		return nil, fmt.Errorf("parsing domain: %w", err)
	}

	return result, nil
}

// DeleteDomain implements vapor.DNSClient.DeleteDomain.
func (c *DNSClient) DeleteDomain(ctx context.Context, domain string) error {
	_, err := c.httpClient.Delete(ctx, "/domains/"+domain)
	if err != nil {
		return fmt.Errorf("deleting domain: %w", err)
	}

	return nil
}

// GetSOA implements vapor.DNSClient.GetSOA.
func (c *DNSClient) GetSOA(ctx context.Context, domain string) (*vapor.DNSSOA, error) {
	resp, err := c.httpClient.Get(ctx, "/domains/"+domain+"/soa", nil)
	if err != nil {
		return nil, fmt.Errorf("getting SOA: %w", err)
	}

	soa, err := vapor.DecodeSingle[vapor.DNSSOA](resp.Body, "dns_soa")
	if err != nil {
		return nil, fmt.Errorf("parsing SOA: %w", err)
	}

	return soa, nil
}

// UpdateSOA implements vapor.DNSClient.UpdateSOA.
func (c *DNSClient) UpdateSOA(ctx context.Context, domain string, soa *vapor.DNSSOA) error {
	_, err := c.httpClient.Patch(ctx, "/domains/"+domain+"/soa", soa)
	if err != nil {
		return fmt.Errorf("updating SOA: %w", err)
	}

	return nil
}

// GetDNSSec implements vapor.DNSClient.GetDNSSec.
func (c *DNSClient) GetDNSSec(ctx context.Context, domain string) ([]string, error) {
	resp, err := c.httpClient.Get(ctx, "/domains/"+domain+"/dnssec", nil)
	if err != nil {
		return nil, fmt.Errorf("getting DNSSEC: %w", err)
	}

	payload, err := vapor.UnwrapSingle(resp.Body, "dns_sec")
	if err != nil {
		return nil, fmt.Errorf("parsing DNSSEC: %w", err)
	}

	var entries []string
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("parsing DNSSEC: %w", err)
	}

	return entries, nil
}

// ListRecords implements vapor.DNSClient.ListRecords.
func (c *DNSClient) ListRecords(ctx context.Context, domain string, params *vapor.QueryParams) (*vapor.Collection[vapor.DNSRecord], error) {
	return listCollection[vapor.DNSRecord](ctx, c.httpClient, "/domains/"+domain+"/records", "records", params)
}

// GetRecord implements vapor.DNSClient.GetRecord.
func (c *DNSClient) GetRecord(ctx context.Context, domain, recordID string) (*vapor.DNSRecord, error) {
	resp, err := c.httpClient.Get(ctx, "/domains/"+domain+"/records/"+recordID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting DNS record: %w", err)
	}

	record, err := vapor.DecodeSingle[vapor.DNSRecord](resp.Body, "record")
	if err != nil {
		return nil, fmt.Errorf("parsing DNS record: %w", err)
	}

	return record, nil
}

// CreateRecord implements vapor.DNSClient.CreateRecord.
func (c *DNSClient) CreateRecord(ctx context.Context, domain string, request *vapor.DNSRecordCreateRequest) (*vapor.DNSRecord, error) {
	resp, err := c.httpClient.Post(ctx, "/domains/"+domain+"/records", request)
	if err != nil {
		return nil, fmt.Errorf("creating DNS record: %w", err)
	}

	record, err := vapor.DecodeSingle[vapor.DNSRecord](resp.Body, "record")
	if err != nil {
		return nil, fmt.Errorf("parsing DNS record: %w", err)
	}

	return record, nil
}

// UpdateRecord implements vapor.DNSClient.UpdateRecord.
func (c *DNSClient) UpdateRecord(ctx context.Context, domain, recordID string, request *vapor.DNSRecordUpdateRequest) error {
	_, err := c.httpClient.Patch(ctx, "/domains/"+domain+"/records/"+recordID, request)
	if err != nil {
		return fmt.Errorf("updating DNS record: %w", err)
	}

	return nil
}

// DeleteRecord implements vapor.DNSClient.DeleteRecord.
func (c *DNSClient) DeleteRecord(ctx context.Context, domain, recordID string) error {
	_, err := c.httpClient.Delete(ctx, "/domains/"+domain+"/records/"+recordID)
	if err != nil {
		return fmt.Errorf("deleting DNS record: %w", err)
	}

	return nil
}
