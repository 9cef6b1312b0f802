// Package report renders a priced trip as descriptive text, CSV, XLSX or PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale selects number separators and the currency symbol
type Locale struct {
	Tag            language.Tag
	CurrencySymbol string
}

// DefaultLocale is Brazilian Portuguese with the real sign
var DefaultLocale = Locale{Tag: language.BrazilianPortuguese, CurrencySymbol: "R$"}

// ParseLocale builds a Locale from a BCP 47 tag such as "pt-BR" or "en-US"
func ParseLocale(tag, currencySymbol string) (Locale, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLocale, tag)
	}
	return Locale{Tag: parsed, CurrencySymbol: strings.TrimSpace(currencySymbol)}, nil
}

// Formatter renders amounts with two decimals and the locale's separators
type Formatter struct {
	locale       Locale
	groupSep     string
	decimalSep   string
	groupingSize int
}

// NewFormatter creates a Formatter for locale. Separators are taken from the
// locale's number printer once; amounts are then laid out from their exact
// decimal digits.
func NewFormatter(locale Locale) *Formatter {
	printer := message.NewPrinter(locale.Tag)
	return &Formatter{
		locale:       locale,
		groupSep:     strings.Trim(printer.Sprintf("%d", 1000), "0123456789"),
		decimalSep:   strings.Trim(printer.Sprintf("%.1f", 1.5), "0123456789"),
		groupingSize: 3,
	}
}

// Number formats an amount without currency symbol, e.g. "1.234,50" for pt-BR
func (f *Formatter) Number(amount decimal.Decimal) string {
	digits := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	integer, fraction, _ := strings.Cut(digits, ".")
	return sign + f.group(integer) + f.decimalSep + fraction
}

// Money formats an amount with the currency symbol, e.g. "R$ 1.234,50"
func (f *Formatter) Money(amount decimal.Decimal) string {
	if f.locale.CurrencySymbol == "" {
		return f.Number(amount)
	}
	return f.locale.CurrencySymbol + " " + f.Number(amount)
}

// group inserts the group separator every groupingSize digits from the right
func (f *Formatter) group(integer string) string {
	if f.groupSep == "" || len(integer) <= f.groupingSize {
		return integer
	}

	var b strings.Builder
	head := len(integer) % f.groupingSize
	if head > 0 {
		b.WriteString(integer[:head])
	}
	for i := head; i < len(integer); i += f.groupingSize {
		if b.Len() > 0 {
			b.WriteString(f.groupSep)
		}
		b.WriteString(integer[i : i+f.groupingSize])
	}
	return b.String()
}
