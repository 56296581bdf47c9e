package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/invoicer/internal/money"
	"github.com/louisbranch/invoicer/internal/storage"
)

// recentInvoiceLimit bounds how many invoices the dashboard shows.
const recentInvoiceLimit = 3

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"money": money.Format}).
		ParseFS(templateFS, "templates/dashboard.html"),
)

// Store is the read-only slice of invoice storage the web server needs.
type Store interface {
	GetRecentInvoices(ctx context.Context, limit int) ([]storage.InvoiceSummary, error)
	CountInvoices(ctx context.Context) (int64, error)
}

type handler struct {
	store  Store
	tracer trace.Tracer
}

// NewHandler assembles the route handlers for the invoice dashboard.
func NewHandler(store Store) http.Handler {
	h := &handler{
		store:  store,
		tracer: otel.Tracer("invoicer.web"),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", h.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/status", h.handleStatus).Methods(http.MethodGet)
	return r
}

type dashboardData struct {
	Invoices []storage.InvoiceSummary
	Error    string
}

// handleDashboard renders the recent-invoices dashboard. Storage failures
// degrade to an inline error block rather than a bare 500 page.
func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "web.dashboard")
	defer span.End()

	var data dashboardData
	invoices, err := h.store.GetRecentInvoices(ctx, recentInvoiceLimit)
	if err != nil {
		span.RecordError(err)
		log.Printf("load recent invoices: %v", err)
		data.Error = err.Error()
	} else {
		data.Invoices = invoices
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		log.Printf("render dashboard: %v", err)
	}
}

type healthyStatus struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	TotalInvoices int64  `json:"total_invoices"`
}

type unhealthyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// handleStatus reports service health by probing the invoice store.
func (h *handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "web.status")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")

	total, err := h.store.CountInvoices(ctx)
	if err != nil {
		span.RecordError(err)
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, unhealthyStatus{Status: "unhealthy", Error: err.Error()})
		return
	}
	writeJSON(w, healthyStatus{
		Status:        "healthy",
		Database:      "connected",
		TotalInvoices: total,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode status response: %v", err)
	}
}
