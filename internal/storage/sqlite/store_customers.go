package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/louisbranch/invoicer/internal/storage"
)

// CreateCustomer inserts one customer and returns its id.
func (s *Store) CreateCustomer(ctx context.Context, name, address string) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if name == "" {
		return 0, fmt.Errorf("customer name is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO customers (name, address) VALUES (?, ?)",
		name,
		address,
	)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create customer id: %w", err)
	}
	return id, nil
}

// GetCustomerByName returns the customer with an exact, case-sensitive
// name match, or storage.ErrNotFound.
func (s *Store) GetCustomerByName(ctx context.Context, name string) (storage.Customer, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Customer{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT id, name, address, created_at FROM customers WHERE name = ?",
		name,
	)

	var customer storage.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Address, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Customer{}, storage.ErrNotFound
		}
		return storage.Customer{}, fmt.Errorf("get customer by name: %w", err)
	}
	return customer, nil
}

// UpsertCustomer updates the address of the customer with the given name,
// or creates one, and returns the customer id either way.
func (s *Store) UpsertCustomer(ctx context.Context, name, address string) (int64, error) {
	existing, err := s.GetCustomerByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.CreateCustomer(ctx, name, address)
		}
		return 0, err
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		"UPDATE customers SET address = ? WHERE id = ?",
		address,
		existing.ID,
	); err != nil {
		return 0, fmt.Errorf("update customer address: %w", err)
	}
	return existing.ID, nil
}

// ListCustomers returns all customers ordered by name ascending.
func (s *Store) ListCustomers(ctx context.Context) ([]storage.Customer, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT id, name, address, created_at FROM customers ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []storage.Customer
	for rows.Next() {
		var customer storage.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Address, &customer.CreatedAt); err != nil {
			return nil, fmt.Errorf("list customers: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}
