// Package dates converts between the MM/DD/YYYY display form used on
// invoices and the YYYY-MM-DD storage form, and computes due dates.
package dates

import (
	"fmt"
	"time"
)

const (
	// DisplayLayout is the zero-padded MM/DD/YYYY form shown on invoices.
	DisplayLayout = "01/02/2006"
	// StorageLayout is the YYYY-MM-DD form persisted in the database.
	StorageLayout = "2006-01-02"
)

// ToStorage parses a zero-padded MM/DD/YYYY string and returns the
// YYYY-MM-DD storage form.
func ToStorage(value string) (string, error) {
	parsed, err := time.Parse(DisplayLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %q, expected MM/DD/YYYY", value)
	}
	return parsed.Format(StorageLayout), nil
}

// ToDisplay parses a zero-padded MM/DD/YYYY string and re-emits it in the
// same canonical form. It is the validation path for display dates.
func ToDisplay(value string) (string, error) {
	parsed, err := time.Parse(DisplayLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %q, expected MM/DD/YYYY", value)
	}
	return parsed.Format(DisplayLayout), nil
}

// DueDate adds a number of calendar days to an MM/DD/YYYY date, rolling
// over months, years and leap days, and returns the result in the same
// display form.
func DueDate(invoiceDate string, days int) (string, error) {
	parsed, err := time.Parse(DisplayLayout, invoiceDate)
	if err != nil {
		return "", fmt.Errorf("invalid invoice date: %q, expected MM/DD/YYYY", invoiceDate)
	}
	return parsed.AddDate(0, 0, days).Format(DisplayLayout), nil
}
