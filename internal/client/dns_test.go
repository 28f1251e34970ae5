package client_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapor-io/vapor-client/pkg/vapor"
)

func TestDNSListDomains(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"domains": [{"domain": "example.com", "dns_sec": "disabled"}],
			"meta": {"links": {"next": "", "prev": ""}, "total": 1}
		}`))
	}))

	collection, err := apiClient.DNS().ListDomains(context.Background(), nil)
	require.NoError(t, err)

	domains, err := collection.All(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, "example.com", domains[0].Domain)
}

func TestDNSCreateRecord(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/domains/example.com/records", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"type": "A", "name": "www", "data": "192.0.2.1", "ttl": 300}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"record": {"id": "r-1", "type": "A", "name": "www", "data": "192.0.2.1", "ttl": 300}}`))
	}))

	record, err := apiClient.DNS().CreateRecord(context.Background(), "example.com", &vapor.DNSRecordCreateRequest{
		Type: "A",
		Name: "www",
		Data: "192.0.2.1",
		TTL:  300,
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", record.ID)
	assert.Equal(t, "www", record.Name)
}

func TestDNSGetSOA(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains/example.com/soa", r.URL.Path)
		_, _ = w.Write([]byte(`{"dns_soa": {"nsprimary": "ns1.example.com", "email": "admin@example.com"}}`))
	}))

	soa, err := apiClient.DNS().GetSOA(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "ns1.example.com", soa.NSPrimary)
	assert.Equal(t, "admin@example.com", soa.Email)
}

func TestDNSGetDNSSec(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/domains/example.com/dnssec", r.URL.Path)
		_, _ = w.Write([]byte(`{"dns_sec": ["example.com IN DNSKEY 257 3 13 abc"]}`))
	}))

	entries, err := apiClient.DNS().GetDNSSec(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "DNSKEY")
}

func TestDNSDeleteDomain(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/domains/example.com", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := apiClient.DNS().DeleteDomain(context.Background(), "example.com")
	require.NoError(t, err)
}
