package invoicing

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/invoicer/internal/dates"
	"github.com/louisbranch/invoicer/internal/storage"
	"github.com/louisbranch/invoicer/internal/timesheet"
)

// CreateInvoice validates the items, sums the invoice total, and creates
// the invoice row plus one line item per entry. Every item is validated
// before the first write so a bad entry cannot leave a partial invoice
// behind. Returns the new invoice id.
func (s *Service) CreateInvoice(ctx context.Context, customerID int64, meta Metadata, items []timesheet.Item) (int64, error) {
	var total float64
	workDates := make([]string, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("invalid quantity %v for item %q", item.Quantity, item.Description)
		}
		if item.Rate < 0 {
			return 0, fmt.Errorf("invalid rate %v for item %q", item.Rate, item.Description)
		}
		workDate, err := dates.ToStorage(item.Date)
		if err != nil {
			return 0, fmt.Errorf("item %q: %w", item.Description, err)
		}
		workDates[i] = workDate
		total += item.Quantity * item.Rate
	}

	invoiceDate, err := dates.ToStorage(meta.InvoiceDate)
	if err != nil {
		return 0, fmt.Errorf("invoice date: %w", err)
	}
	dueDate, err := dates.ToStorage(meta.DueDate)
	if err != nil {
		return 0, fmt.Errorf("due date: %w", err)
	}

	invoiceID, err := s.store.CreateInvoice(ctx, storage.InvoiceDetails{
		InvoiceNumber: meta.InvoiceNumber,
		CustomerID:    customerID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		TotalAmount:   total,
	})
	if err != nil {
		return 0, err
	}

	for i, item := range items {
		lineItem := storage.LineItem{
			InvoiceID:   invoiceID,
			WorkDate:    workDates[i],
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Quantity * item.Rate,
		}
		if err := s.store.AddInvoiceItem(ctx, lineItem); err != nil {
			return 0, fmt.Errorf("add invoice item: %w", err)
		}
	}
	return invoiceID, nil
}

// ImportInvoice derives invoice metadata from the data filename and
// creates the invoice with the given items.
func (s *Service) ImportInvoice(ctx context.Context, customerID int64, dataFile string, items []timesheet.Item) (int64, error) {
	meta, err := s.MetadataFromFilename(dataFile)
	if err != nil {
		return 0, fmt.Errorf("import invoice from %s: %w", dataFile, err)
	}
	invoiceID, err := s.CreateInvoice(ctx, customerID, meta, items)
	if err != nil {
		return 0, fmt.Errorf("import invoice from %s: %w", dataFile, err)
	}
	return invoiceID, nil
}

// ImportInvoiceFromFile parses a timesheet file and imports it as an
// invoice for the customer.
func (s *Service) ImportInvoiceFromFile(ctx context.Context, customerID int64, dataFile string) (int64, error) {
	items, err := timesheet.ParseFile(dataFile)
	if err != nil {
		return 0, fmt.Errorf("import invoice from %s: %w", dataFile, err)
	}
	return s.ImportInvoice(ctx, customerID, dataFile, items)
}

// GetInvoiceData returns the assembled invoice data for rendering, or
// nil when the invoice id does not resolve.
func (s *Service) GetInvoiceData(ctx context.Context, invoiceID int64) (*storage.InvoiceData, error) {
	data, err := s.store.GetInvoiceData(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

// ListInvoices returns invoice summaries, optionally filtered to one
// customer when customerID is non-zero.
func (s *Service) ListInvoices(ctx context.Context, customerID int64) ([]storage.InvoiceSummary, error) {
	return s.store.ListInvoices(ctx, customerID)
}
