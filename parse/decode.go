package parse

import (
	"strconv"
	"strings"

	"github.com/fwojciec/plfhelper"
)

// DecodeNumber parses s using the given decimal and group separators.
// When the integer part is grouped, the first group holds one to three
// digits and every later group exactly three. Returns EMALFORMED if s is
// not a number under that convention.
func DecodeNumber(s string, decimal, group rune) (float64, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, string(decimal))
	if hasFrac && strings.ContainsRune(fracPart, decimal) {
		return 0, malformed(s, "more than one decimal separator")
	}

	var b strings.Builder
	b.Grow(len(s))

	groups := strings.Split(intPart, string(group))
	for i, g := range groups {
		if g == "" {
			switch {
			case len(groups) == 1:
				return 0, malformed(s, "no integer digits")
			case i == len(groups)-1:
				return 0, malformed(s, "trailing group separator")
			default:
				return 0, malformed(s, "misplaced group separator")
			}
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return 0, malformed(s, "unexpected character")
			}
		}
		if len(groups) > 1 && ((i == 0 && len(g) > 3) || (i > 0 && len(g) != 3)) {
			return 0, malformed(s, "irregular digit grouping")
		}
		b.WriteString(g)
	}

	if hasFrac {
		if fracPart == "" {
			return 0, malformed(s, "no fraction digits")
		}
		b.WriteByte('.')
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, malformed(s, "unexpected character in fraction")
			}
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, malformed(s, err.Error())
	}
	return v, nil
}

func malformed(s, reason string) error {
	return plfhelper.Errorf(plfhelper.EMALFORMED, "malformed number %q: %s", s, reason)
}
