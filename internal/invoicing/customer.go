package invoicing

import (
	"context"
	"fmt"

	"github.com/louisbranch/invoicer/internal/clientfile"
	"github.com/louisbranch/invoicer/internal/storage"
)

// CreateCustomer creates a new customer and returns its id.
func (s *Service) CreateCustomer(ctx context.Context, name, address string) (int64, error) {
	return s.store.CreateCustomer(ctx, name, address)
}

// ImportCustomerFromFile upserts a customer from a client JSON file,
// keyed on the customer name, and returns the customer id.
func (s *Service) ImportCustomerFromFile(ctx context.Context, path string) (int64, error) {
	client, err := clientfile.Parse(path)
	if err != nil {
		return 0, fmt.Errorf("import customer: %w", err)
	}
	return s.store.UpsertCustomer(ctx, client.Name, client.Address)
}

// ListCustomers returns all customers ordered by name.
func (s *Service) ListCustomers(ctx context.Context) ([]storage.Customer, error) {
	return s.store.ListCustomers(ctx)
}
