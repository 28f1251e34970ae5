package client

import (
	"context"
	"fmt"

	"github.com/vapor-io/vapor-client/internal/http"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// BillingClient implements vapor.BillingClient.
type BillingClient struct {
	httpClient *http.Client
}

// NewBillingClient creates a new billing client.
func NewBillingClient(httpClient *http.Client) *BillingClient {
	return &BillingClient{
		httpClient: httpClient,
	}
}

// ListHistory implements vapor.BillingClient.ListHistory.
func (c *BillingClient) ListHistory(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Bill], error) {
	return listCollection[vapor.Bill](ctx, c.httpClient, "/billing/history", "billing_history", params)
}

// ListInvoices implements vapor.BillingClient.ListInvoices.
func (c *BillingClient) ListInvoices(ctx context.Context, params *vapor.QueryParams) (*vapor.Collection[vapor.Invoice], error) {
	return listCollection[vapor.Invoice](ctx, c.httpClient, "/billing/invoices", "billing_invoices", params)
}

// GetInvoice implements vapor.BillingClient.GetInvoice.
func (c *BillingClient) GetInvoice(ctx context.Context, invoiceID string) (*vapor.Invoice, error) {
	resp, err := c.httpClient.Get(ctx, "/billing/invoices/"+invoiceID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	invoice, err := vapor.DecodeSingle[vapor.Invoice](resp.Body, "billing_invoice")
	if err != nil {
		return nil, fmt.Errorf("parsing invoice: %w", err)
	}

	return invoice, nil
}

// ListInvoiceItems implements vapor.BillingClient.ListInvoiceItems.
func (c *BillingClient) ListInvoiceItems(ctx context.Context, invoiceID string, params *vapor.QueryParams) (*vapor.Collection[vapor.InvoiceItem], error) {
	return listCollection[vapor.InvoiceItem](ctx, c.httpClient, "/billing/invoices/"+invoiceID+"/items", "invoice_items", params)
}
