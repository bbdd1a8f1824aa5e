// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCompact formats an amount with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M", 1234567890 -> "1.2B"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// symbols maps ISO codes to the symbol printed in front of (or after) amounts.
// Codes not listed print as "CODE ".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"NZD": "NZ$",
	"INR": "₹",
}

// suffixLanguages place the symbol after the amount.
var suffixLanguages = map[string]bool{
	"de": true,
	"fr": true,
	"es": true,
	"it": true,
	"nl": true,
	"pt": true,
	"sv": true,
	"da": true,
	"fi": true,
	"nb": true,
	"pl": true,
	"cs": true,
}

// CurrencyFormatter renders whole currency amounts for one currency and locale.
type CurrencyFormatter struct {
	code    string
	symbol  string
	suffix  bool
	printer *message.Printer
}

// NewCurrencyFormatter validates the ISO currency code and BCP 47 locale.
func NewCurrencyFormatter(code, locale string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", code, err)
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}

	iso := unit.String()
	sym, ok := symbols[iso]
	if !ok {
		sym = iso + " "
	}
	base, _ := tag.Base()

	return &CurrencyFormatter{
		code:    iso,
		symbol:  sym,
		suffix:  suffixLanguages[base.String()],
		printer: message.NewPrinter(tag),
	}, nil
}

// DefaultCurrencyFormatter formats US dollars for en-US.
func DefaultCurrencyFormatter() *CurrencyFormatter {
	f, err := NewCurrencyFormatter("USD", "en-US")
	if err != nil {
		panic(err)
	}
	return f
}

// Code returns the ISO currency code.
func (f *CurrencyFormatter) Code() string { return f.code }

// Format renders n with locale grouping and the currency symbol, no decimals.
// e.g., 187500 -> "$187,500" (en-US, USD), "187.500 €" (de-DE, EUR)
func (f *CurrencyFormatter) Format(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	num := f.printer.Sprintf("%d", n)
	if f.suffix {
		return sign + num + " " + strings.TrimSpace(f.symbol)
	}
	return sign + f.symbol + num
}

// FormatCompact renders n with a suffix and the currency symbol, e.g. "$187.5K".
func (f *CurrencyFormatter) FormatCompact(n int64) string {
	if f.suffix {
		return FormatCompact(n) + " " + strings.TrimSpace(f.symbol)
	}
	return f.symbol + FormatCompact(n)
}
