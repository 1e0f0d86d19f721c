package catalog

import (
	"fmt"
	"io"

	"github.com/fwojciec/plfhelper"
	"gopkg.in/yaml.v3"
)

// overrideDoc is one locale section of a phrase override file. Empty
// fields keep the base value.
type overrideDoc struct {
	plfhelper.LocaleConfig `yaml:",inline"`
	Products               []string `yaml:"products"`
}

// LoadYAML reads phrase and product overrides keyed by two-letter locale
// code and applies them on top of base:
//
//	de:
//	  currency: wT
//	  products: [Salat, Karotten, gelbe Teichrose]
//
// Missing keys fall back to base. Unknown locale codes return EINVALID.
func LoadYAML(r io.Reader, base *Catalog) (*Catalog, error) {
	var docs map[string]overrideDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&docs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding phrase overrides: %w", err)
	}

	out := base.clone()
	for code, doc := range docs {
		locale, err := plfhelper.ParseLocale(code)
		if err != nil {
			return nil, err
		}

		cfg := out.configs[locale]
		merge(&cfg, &doc.LocaleConfig)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		out.configs[locale] = cfg

		if len(doc.Products) > 0 {
			out.products[locale] = plfhelper.NewProductCatalog(doc.Products...)
		}
	}
	return out, nil
}

// merge copies every non-empty phrase from src into dst.
func merge(dst, src *plfhelper.LocaleConfig) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.Currency, src.Currency)
	set(&dst.MarketWelcome, src.MarketWelcome)
	set(&dst.CurrentOffers, src.CurrentOffers)
	set(&dst.Total, src.Total)
	set(&dst.DeleteFilter, src.DeleteFilter)
	set(&dst.ListOfAllPlayers, src.ListOfAllPlayers)
	set(&dst.PlayersTotal, src.PlayersTotal)
	set(&dst.ShowMyRanking, src.ShowMyRanking)
	set(&dst.Back, src.Back)
	set(&dst.Forward, src.Forward)
}
