package sqlite

import (
	"context"
	"fmt"

	"github.com/louisbranch/invoicer/internal/storage"
)

// AddInvoiceItem inserts one line item. Items are never updated or
// deleted once written.
func (s *Store) AddInvoiceItem(ctx context.Context, item storage.LineItem) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if item.InvoiceID <= 0 {
		return fmt.Errorf("invoice id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO invoice_items (invoice_id, work_date, description,
		                            quantity, rate, amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.InvoiceID,
		item.WorkDate,
		item.Description,
		item.Quantity,
		item.Rate,
		item.Amount,
	)
	if err != nil {
		return fmt.Errorf("add invoice item: %w", err)
	}
	return nil
}
