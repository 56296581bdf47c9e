// Package money validates currency-formatted amounts and formats totals
// for invoices and CLI output.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Parse converts a currency-formatted string into its numeric value.
// Currency symbols and thousands separators are stripped before parsing.
// Negative amounts are rejected; zero is valid.
func Parse(amount string) (float64, error) {
	cleaned := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(amount))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", amount)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid amount: %q: amount cannot be negative", amount)
	}
	return value, nil
}

// Format renders a dollar amount with two decimals and thousands
// separators, e.g. $1,234.50.
func Format(value float64) string {
	return printer.Sprintf("$%v", number.Decimal(value, number.Scale(2)))
}
