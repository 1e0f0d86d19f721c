package main

import (
	"io"
	"math"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/parse"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// localeSetup is everything a command needs to parse snapshots of one locale.
type localeSetup struct {
	Locale   plfhelper.Locale
	Config   *plfhelper.LocaleConfig
	Products *plfhelper.ProductCatalog
	Layout   plfhelper.Layout
}

func newLocaleSetup(cat plfhelper.LocaleCatalog, locale plfhelper.Locale) (*localeSetup, error) {
	cfg, err := cat.LocaleConfig(locale)
	if err != nil {
		return nil, err
	}
	products, err := cat.Products(locale)
	if err != nil {
		return nil, err
	}
	return &localeSetup{
		Locale:   locale,
		Config:   cfg,
		Products: products,
		Layout:   plfhelper.DefaultLayout(products),
	}, nil
}

func (s *localeSetup) newParser() (*parse.Parser, error) {
	return parse.NewParser(s.Config, parse.WithReservedIndices(s.Layout.PlayersIndex, s.Layout.Players1Index))
}

// printValues writes the known slots of values using the locale's number
// conventions. Zero and unset prices are omitted.
func printValues(w io.Writer, s *localeSetup, values []float64) {
	p := message.NewPrinter(s.Locale.Tag())
	for i := 0; i < s.Products.Len() && i < s.Layout.Products && i < len(values); i++ {
		v := values[i]
		if v == 0 || math.IsNaN(v) {
			continue
		}
		p.Fprintf(w, "  %-24s %v\n", s.Products.Name(i), number.Decimal(v, number.MaxFractionDigits(2)))
	}
	if v := slot(values, s.Layout.PlayersIndex); v > 0 {
		p.Fprintf(w, "  %-24s %v\n", "players", number.Decimal(v))
	}
	if v := slot(values, s.Layout.Players1Index); v > 0 {
		p.Fprintf(w, "  %-24s %v\n", "one-point rank", number.Decimal(v))
	}
}

func slot(values []float64, i int) float64 {
	if i < 0 || i >= len(values) || math.IsNaN(values[i]) {
		return 0
	}
	return values[i]
}
