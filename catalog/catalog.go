// Package catalog provides the built-in phrase tables and product lists
// for every supported locale.
package catalog

import (
	"github.com/fwojciec/plfhelper"
)

// Ensure Catalog implements plfhelper.LocaleCatalog at compile time.
var _ plfhelper.LocaleCatalog = (*Catalog)(nil)

// Catalog holds one phrase table and one product catalog per locale.
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	configs  map[plfhelper.Locale]plfhelper.LocaleConfig
	products map[plfhelper.Locale]*plfhelper.ProductCatalog
}

// New returns a Catalog populated with the built-in tables.
func New() *Catalog {
	c := &Catalog{
		configs:  make(map[plfhelper.Locale]plfhelper.LocaleConfig, len(builtinPhrases)),
		products: make(map[plfhelper.Locale]*plfhelper.ProductCatalog, len(builtinProducts)),
	}
	for locale, cfg := range builtinPhrases {
		cfg.Locale = locale
		cfg.DecimalSeparator, cfg.GroupSeparator = Separators(locale)
		c.configs[locale] = cfg
	}
	for locale, names := range builtinProducts {
		c.products[locale] = plfhelper.NewProductCatalog(names...)
	}
	return c
}

// LocaleConfig returns a copy of the phrase table for locale.
func (c *Catalog) LocaleConfig(locale plfhelper.Locale) (*plfhelper.LocaleConfig, error) {
	cfg, ok := c.configs[locale]
	if !ok {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "no phrase table for locale %q", string(locale))
	}
	return &cfg, nil
}

// Products returns the product catalog for locale.
func (c *Catalog) Products(locale plfhelper.Locale) (*plfhelper.ProductCatalog, error) {
	p, ok := c.products[locale]
	if !ok {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "no product list for locale %q", string(locale))
	}
	return p, nil
}

// clone returns a shallow copy that can be modified without touching c.
func (c *Catalog) clone() *Catalog {
	out := &Catalog{
		configs:  make(map[plfhelper.Locale]plfhelper.LocaleConfig, len(c.configs)),
		products: make(map[plfhelper.Locale]*plfhelper.ProductCatalog, len(c.products)),
	}
	for k, v := range c.configs {
		out.configs[k] = v
	}
	for k, v := range c.products {
		out.products[k] = v
	}
	return out
}
