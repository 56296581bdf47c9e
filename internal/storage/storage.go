// Package storage defines persistence contracts for invoicing state.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already
	// exists, such as a duplicate invoice number.
	ErrAlreadyExists = errors.New("record already exists")
)

// VendorID is the singleton vendor every invoice is issued by. The row is
// seeded by migration and never modified afterwards.
const VendorID int64 = 1

// Customer stores one billable client.
type Customer struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt string
}

// InvoiceDetails carries the fields needed to create an invoice row.
// Dates are in YYYY-MM-DD storage form.
type InvoiceDetails struct {
	InvoiceNumber string
	CustomerID    int64
	InvoiceDate   string
	DueDate       string
	TotalAmount   float64
}

// LineItem stores one billable entry belonging to an invoice. WorkDate is
// in YYYY-MM-DD storage form; Amount is Quantity * Rate, computed by the
// caller.
type LineItem struct {
	InvoiceID   int64
	WorkDate    string
	Description string
	Quantity    float64
	Rate        float64
	Amount      float64
}

// InvoiceSummary is one row of an invoice listing.
type InvoiceSummary struct {
	ID            int64
	InvoiceNumber string
	CustomerName  string
	InvoiceDate   string
	TotalAmount   float64
}

// Party identifies one side of an invoice on a rendered document.
type Party struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// InvoiceItemData is one line item as rendered on a document.
type InvoiceItemData struct {
	Date        string
	Description string
	Quantity    float64
	Rate        float64
	Amount      float64
}

// InvoiceData is the assembled invoice, customer, and vendor data ready
// for document rendering. Dates are in YYYY-MM-DD storage form.
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Total         float64
	Company       Party
	Client        Party
	PaymentTerms  string
	Items         []InvoiceItemData
}

// CustomerStore persists customers, upserting by exact name match.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, name, address string) (int64, error)
	GetCustomerByName(ctx context.Context, name string) (Customer, error)
	UpsertCustomer(ctx context.Context, name, address string) (int64, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
}

// InvoiceStore persists invoices and their line items. Invoices and items
// are created once and never updated or deleted.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, details InvoiceDetails) (int64, error)
	AddInvoiceItem(ctx context.Context, item LineItem) error
	GetInvoiceData(ctx context.Context, invoiceID int64) (InvoiceData, error)
	ListInvoices(ctx context.Context, customerID int64) ([]InvoiceSummary, error)
	GetRecentInvoices(ctx context.Context, limit int) ([]InvoiceSummary, error)
	CountInvoices(ctx context.Context) (int64, error)
}
