package invoicing

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/louisbranch/invoicer/internal/dates"
)

// filenamePrefix is the timesheet naming convention that drives invoice
// numbering: invoice-data-<month>-<day>.txt.
const filenamePrefix = "invoice-data-"

// dueDateDays is how many calendar days after the invoice date payment
// is due.
const dueDateDays = 30

// Metadata carries the derived invoice identity and display dates.
type Metadata struct {
	InvoiceNumber string
	InvoiceDate   string // MM/DD/YYYY
	DueDate       string // MM/DD/YYYY
}

// MetadataFromFilename derives the invoice number, invoice date, and due
// date from a timesheet filename. A name matching
// invoice-data-<M>-<D>.txt yields number <year>.<MM>.<DD> and dates in
// the current year; any other name falls back to today's date. A matching
// name with malformed month or day segments is an error.
func (s *Service) MetadataFromFilename(path string) (Metadata, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	now := s.now()

	if !strings.HasPrefix(base, filenamePrefix) {
		return s.metadataForDay(now.Year(), int(now.Month()), now.Day())
	}

	datePart := strings.TrimPrefix(base, filenamePrefix)
	monthPart, dayPart, ok := strings.Cut(datePart, "-")
	if !ok {
		return Metadata{}, invalidFilenameError(path)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return Metadata{}, invalidFilenameError(path)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return Metadata{}, invalidFilenameError(path)
	}

	meta, err := s.metadataForDay(now.Year(), month, day)
	if err != nil {
		return Metadata{}, invalidFilenameError(path)
	}
	return meta, nil
}

func (s *Service) metadataForDay(year, month, day int) (Metadata, error) {
	invoiceDate := fmt.Sprintf("%02d/%02d/%d", month, day, year)
	if _, err := dates.ToDisplay(invoiceDate); err != nil {
		return Metadata{}, err
	}
	dueDate, err := dates.DueDate(invoiceDate, dueDateDays)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		InvoiceNumber: fmt.Sprintf("%d.%02d.%02d", year, month, day),
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
	}, nil
}

func invalidFilenameError(path string) error {
	return fmt.Errorf("invalid filename format: %s, expected invoice-data-M-D.txt", path)
}
