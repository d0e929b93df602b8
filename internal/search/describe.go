package search

import (
	"math"
	"strings"

	"github.com/kahvecikaan/techpulse/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"ZAR": "R",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Describe renders a one-line human readable summary of p
func Describe(p domain.Product) string {
	var b strings.Builder

	b.WriteString(p.Name)
	if p.Brand != "" {
		b.WriteString(" by ")
		b.WriteString(p.Brand)
	}
	if p.Store != "" {
		b.WriteString(" at ")
		b.WriteString(p.Store)
	}
	b.WriteString(" for ")
	b.WriteString(FormatPrice(p.Price, p.Currency))
	b.WriteString(printer.Sprintf(" (%.1f stars from %d reviews)", p.Rating, p.ReviewCount))

	if !p.IsLocal {
		b.WriteString(" [international]")
	}
	if !p.InStock {
		b.WriteString(" - out of stock")
	}

	return b.String()
}

// FormatPrice prints amount with a currency symbol and thousands separators
func FormatPrice(amount float64, currency string) string {
	prefix, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		prefix = strings.ToUpper(currency) + " "
	}

	if amount == math.Trunc(amount) {
		return prefix + printer.Sprintf("%d", int64(amount))
	}
	return prefix + printer.Sprintf("%.2f", amount)
}
