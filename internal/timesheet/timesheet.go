// Package timesheet parses tab-separated time and expense entries into
// invoice line items.
package timesheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/invoicer/internal/dates"
	"github.com/louisbranch/invoicer/internal/money"
)

// Item is one billable entry parsed from a timesheet line.
type Item struct {
	Date        string // MM/DD/YYYY
	Description string
	Quantity    float64
	Rate        float64
}

// ParseFile reads a tab-separated timesheet and returns its line items.
//
// An optional header line containing both "Date" and "Hours" is skipped.
// Data lines hold at least four tab-separated fields: date, quantity,
// amount, description; lines with fewer fields are skipped. The rate is
// derived from amount / quantity. The first invalid line aborts the parse
// with its 1-based line number; a file without any valid item is an error.
func ParseFile(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("invoice data file not found: %s", path)
		}
		return nil, fmt.Errorf("read invoice data file %s: %w", path, err)
	}

	lines := strings.Split(string(raw), "\n")
	start := 0
	if len(lines) > 0 && strings.Contains(lines[0], "Date") && strings.Contains(lines[0], "Hours") {
		start = 1
	}

	var items []Item
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		item, ok, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse line %d: %w", i+1, err)
		}
		if ok {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid invoice items found in %s", path)
	}
	return items, nil
}

// parseLine parses one data line. The second return value is false for
// lines that are skipped rather than failed.
func parseLine(line string) (Item, bool, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < 4 {
		return Item{}, false, nil
	}

	quantityField := strings.TrimSpace(parts[1])
	quantity, err := strconv.ParseFloat(quantityField, 64)
	if err != nil {
		return Item{}, false, fmt.Errorf("invalid quantity %q", quantityField)
	}
	if quantity <= 0 {
		return Item{}, false, fmt.Errorf("invalid quantity %q: quantity must be positive", quantityField)
	}

	amountField := strings.TrimSpace(parts[2])
	amount, err := money.Parse(amountField)
	if err != nil {
		return Item{}, false, err
	}

	date, err := normalizeDate(strings.TrimSpace(parts[0]))
	if err != nil {
		return Item{}, false, err
	}

	return Item{
		Date:        date,
		Description: strings.TrimSpace(parts[3]),
		Quantity:    quantity,
		Rate:        amount / quantity,
	}, true, nil
}

// normalizeDate accepts both M/D/YYYY and MM/DD/YYYY forms and returns
// the zero-padded display form.
func normalizeDate(value string) (string, error) {
	if !strings.Contains(value, "/") {
		return "", fmt.Errorf("invalid date %q: expected MM/DD/YYYY", value)
	}
	if display, err := dates.ToDisplay(value); err == nil {
		return display, nil
	}
	parts := strings.SplitN(value, "/", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid date %q: expected MM/DD/YYYY", value)
	}
	display, err := dates.ToDisplay(pad2(parts[0]) + "/" + pad2(parts[1]) + "/" + parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return display, nil
}

func pad2(value string) string {
	if len(value) == 1 {
		return "0" + value
	}
	return value
}
