package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/invoicer/internal/storage"
)

type fakeStore struct {
	invoices []storage.InvoiceSummary
	total    int64
	err      error
}

func (f *fakeStore) GetRecentInvoices(ctx context.Context, limit int) ([]storage.InvoiceSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.invoices) {
		return f.invoices[:limit], nil
	}
	return f.invoices, nil
}

func (f *fakeStore) CountInvoices(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.total, nil
}

func TestDashboardListsRecentInvoices(t *testing.T) {
	t.Parallel()

	store := &fakeStore{invoices: []storage.InvoiceSummary{
		{ID: 2, InvoiceNumber: "2025.04.01", CustomerName: "Acme Corp", InvoiceDate: "2025-04-01", TotalAmount: 1200},
		{ID: 1, InvoiceNumber: "2025.03.15", CustomerName: "Beta LLC", InvoiceDate: "2025-03-15", TotalAmount: 800},
	}}
	rec := httptest.NewRecorder()
	NewHandler(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"2025.04.01", "Acme Corp", "$1,200.00", "Beta LLC"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHandler(&fakeStore{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "No invoices yet.") {
		t.Fatal("dashboard missing empty-state message")
	}
}

func TestDashboardStoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("disk offline")}
	rec := httptest.NewRecorder()
	NewHandler(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Unable to load invoices") {
		t.Fatal("dashboard missing error block")
	}
}

func TestStatusHealthy(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHandler(&fakeStore{total: 7}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q, want application/json", got)
	}

	var body struct {
		Status        string `json:"status"`
		Database      string `json:"database"`
		TotalInvoices int64  `json:"total_invoices"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "healthy" || body.Database != "connected" || body.TotalInvoices != 7 {
		t.Fatalf("body = %+v, want healthy/connected/7", body)
	}
}

func TestStatusUnhealthy(t *testing.T) {
	t.Parallel()

	store := &fakeStore{err: errors.New("database locked")}
	rec := httptest.NewRecorder()
	NewHandler(store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "unhealthy" || body.Error != "database locked" {
		t.Fatalf("body = %+v, want unhealthy/database locked", body)
	}
}

func TestStatusRejectsPost(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHandler(&fakeStore{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
