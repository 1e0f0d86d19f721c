package catalog

import (
	"unicode"

	"github.com/fwojciec/plfhelper"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Separators returns the decimal and grouping separators of locale as
// defined by CLDR. It falls back to '.' and ',' when the locale's
// convention cannot be expressed with those two characters.
func Separators(locale plfhelper.Locale) (decimal, group rune) {
	p := message.NewPrinter(locale.Tag())
	sample := p.Sprintf("%v", number.Decimal(1234.5))

	// sample looks like "1,234.5": the first non-digit groups, the last
	// one is the decimal point.
	var first, last rune
	for _, r := range sample {
		if unicode.IsDigit(r) {
			continue
		}
		if first == 0 {
			first = r
		}
		last = r
	}
	if !validPair(last, first) {
		return '.', ','
	}
	return last, first
}

func validPair(decimal, group rune) bool {
	if decimal == group {
		return false
	}
	return (decimal == '.' || decimal == ',') && (group == '.' || group == ',')
}
