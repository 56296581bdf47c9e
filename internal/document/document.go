// Package document renders assembled invoice data to an HTML file and a
// matching PDF at the same base name.
package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/louisbranch/invoicer/internal/money"
	"github.com/louisbranch/invoicer/internal/storage"
)

//go:embed template/invoice.html
var templateFS embed.FS

var invoiceTemplate = template.Must(
	template.New("invoice.html").
		Funcs(template.FuncMap{"money": money.Format}).
		ParseFS(templateFS, "template/invoice.html"),
)

// Result carries the generated file paths and the invoice total.
type Result struct {
	HTMLPath string
	PDFPath  string
	Total    float64
}

// Confirmation returns the single human-readable line reported after a
// successful generation.
func (r Result) Confirmation() string {
	return fmt.Sprintf("Invoice generated: %s and %s (Total: %s)", r.HTMLPath, r.PDFPath, money.Format(r.Total))
}

// Generate renders the invoice to <base>.html and <base>.pdf inside
// outputDir, where the base name is derived from the client name and the
// invoice date.
func Generate(data storage.InvoiceData, outputDir string) (Result, error) {
	base := baseFilename(data)
	htmlPath := filepath.Join(outputDir, base+".html")
	pdfPath := filepath.Join(outputDir, base+".pdf")

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return Result{}, fmt.Errorf("render invoice template: %w", err)
	}
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write html invoice: %w", err)
	}
	if err := writePDF(data, pdfPath); err != nil {
		return Result{}, fmt.Errorf("write pdf invoice: %w", err)
	}
	return Result{HTMLPath: htmlPath, PDFPath: pdfPath, Total: data.Total}, nil
}

// baseFilename derives the output name from the lower-cased client name
// (spaces to dashes, commas and periods stripped) and the invoice date
// with its separators replaced by dots.
func baseFilename(data storage.InvoiceData) string {
	name := strings.ToLower(data.Client.Name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.NewReplacer(",", "", ".", "").Replace(name)
	date := strings.NewReplacer("-", ".", "/", ".").Replace(data.InvoiceDate)
	return name + "-invoice-" + date
}

func writePDF(data storage.InvoiceData, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, data.Company.Name)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	writeLines(pdf, data.Company.Address)
	writeLines(pdf, data.Company.Email)
	writeLines(pdf, data.Company.Phone)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Invoice "+data.InvoiceNumber)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, "Invoice date: "+data.InvoiceDate)
	pdf.Ln(5)
	pdf.Cell(0, 5, "Due date: "+data.DueDate)
	pdf.Ln(5)
	pdf.Cell(0, 5, "Terms: "+data.PaymentTerms)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Bill to")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	writeLines(pdf, data.Client.Name)
	writeLines(pdf, data.Client.Address)
	pdf.Ln(4)

	widths := []float64{25, 75, 20, 30, 30}
	headers := []string{"Date", "Description", "Hours", "Rate", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range data.Items {
		pdf.CellFormat(widths[0], 7, item.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, money.Format(item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, money.Format(item.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "Total due", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, money.Format(data.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("output pdf: %w", err)
	}
	return nil
}

func writeLines(pdf *gofpdf.Fpdf, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
}
