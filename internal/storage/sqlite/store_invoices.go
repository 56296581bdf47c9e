package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/invoicer/internal/storage"
)

const invoiceSummaryColumns = `i.id, i.invoice_number, c.name, i.invoice_date, i.total_amount
	   FROM invoices i
	   JOIN customers c ON i.customer_id = c.id`

// CreateInvoice inserts one invoice row for the singleton vendor and
// returns its id. A duplicate invoice number yields
// storage.ErrAlreadyExists.
func (s *Store) CreateInvoice(ctx context.Context, details storage.InvoiceDetails) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if details.InvoiceNumber == "" {
		return 0, fmt.Errorf("invoice number is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO invoices (invoice_number, customer_id, vendor_id,
		                       invoice_date, due_date, total_amount)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		details.InvoiceNumber,
		details.CustomerID,
		storage.VendorID,
		details.InvoiceDate,
		details.DueDate,
		details.TotalAmount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("invoice number %s: %w", details.InvoiceNumber, storage.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("create invoice: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create invoice id: %w", err)
	}
	return id, nil
}

// GetInvoiceData returns the invoice joined with its customer and vendor
// plus its items ordered by work date ascending, or storage.ErrNotFound.
func (s *Store) GetInvoiceData(ctx context.Context, invoiceID int64) (storage.InvoiceData, error) {
	if s == nil || s.sqlDB == nil {
		return storage.InvoiceData{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT i.invoice_number, i.invoice_date, i.due_date, i.total_amount,
		        c.name, c.address,
		        v.name, v.address, v.email, v.phone
		   FROM invoices i
		   JOIN customers c ON i.customer_id = c.id
		   JOIN vendors v ON i.vendor_id = v.id
		  WHERE i.id = ?`,
		invoiceID,
	)

	var data storage.InvoiceData
	err := row.Scan(
		&data.InvoiceNumber,
		&data.InvoiceDate,
		&data.DueDate,
		&data.Total,
		&data.Client.Name,
		&data.Client.Address,
		&data.Company.Name,
		&data.Company.Address,
		&data.Company.Email,
		&data.Company.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.InvoiceData{}, storage.ErrNotFound
		}
		return storage.InvoiceData{}, fmt.Errorf("get invoice data: %w", err)
	}
	data.PaymentTerms = "Net 30 days"

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT work_date, description, quantity, rate, amount
		   FROM invoice_items
		  WHERE invoice_id = ?
		  ORDER BY work_date ASC`,
		invoiceID,
	)
	if err != nil {
		return storage.InvoiceData{}, fmt.Errorf("get invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item storage.InvoiceItemData
		if err := rows.Scan(&item.Date, &item.Description, &item.Quantity, &item.Rate, &item.Amount); err != nil {
			return storage.InvoiceData{}, fmt.Errorf("get invoice items: %w", err)
		}
		data.Items = append(data.Items, item)
	}
	if err := rows.Err(); err != nil {
		return storage.InvoiceData{}, fmt.Errorf("get invoice items: %w", err)
	}
	return data, nil
}

// ListInvoices returns invoice summaries ordered by invoice date
// descending. A customerID of zero lists invoices for all customers.
func (s *Store) ListInvoices(ctx context.Context, customerID int64) ([]storage.InvoiceSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var (
		rows *sql.Rows
		err  error
	)
	if customerID > 0 {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT `+invoiceSummaryColumns+`
			  WHERE i.customer_id = ?
			  ORDER BY i.invoice_date DESC`,
			customerID,
		)
	} else {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT `+invoiceSummaryColumns+`
			  ORDER BY i.invoice_date DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceSummaries(rows)
}

// GetRecentInvoices returns the limit most recent invoices by invoice
// date descending. A limit of zero returns no rows.
func (s *Store) GetRecentInvoices(ctx context.Context, limit int) ([]storage.InvoiceSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return []storage.InvoiceSummary{}, nil
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+invoiceSummaryColumns+`
		  ORDER BY i.invoice_date DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoiceSummaries(rows)
}

// CountInvoices returns the total number of invoice rows.
func (s *Store) CountInvoices(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var count int64
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM invoices").Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

func scanInvoiceSummaries(rows *sql.Rows) ([]storage.InvoiceSummary, error) {
	summaries := []storage.InvoiceSummary{}
	for rows.Next() {
		var summary storage.InvoiceSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.InvoiceNumber,
			&summary.CustomerName,
			&summary.InvoiceDate,
			&summary.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan invoice summaries: %w", err)
	}
	return summaries, nil
}
