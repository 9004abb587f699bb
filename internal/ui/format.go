package ui

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders amount with two decimals and digit grouping, prefixed
// by the ISO currency code. Unknown codes are shown as given.
func FormatAmount(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}

	formatted := printer.Sprintf("%.2f", amount)
	if code == "" {
		return formatted
	}
	return code + " " + formatted
}
