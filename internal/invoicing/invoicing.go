// Package invoicing orchestrates parsing, validation, and persistence for
// customers and invoices.
package invoicing

import (
	"time"

	"github.com/louisbranch/invoicer/internal/storage"
)

// Store is the persistence surface the service operates on.
type Store interface {
	storage.CustomerStore
	storage.InvoiceStore
}

// Service coordinates invoicing operations over a storage backend. The
// backend is passed in explicitly so callers control the connection
// lifecycle.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService returns a service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}
