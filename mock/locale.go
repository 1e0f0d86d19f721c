package mock

import "github.com/fwojciec/plfhelper"

var _ plfhelper.LocaleCatalog = (*LocaleCatalog)(nil)

// LocaleCatalog is a mock implementation of plfhelper.LocaleCatalog.
type LocaleCatalog struct {
	LocaleConfigFn func(locale plfhelper.Locale) (*plfhelper.LocaleConfig, error)
	ProductsFn     func(locale plfhelper.Locale) (*plfhelper.ProductCatalog, error)
}

func (c *LocaleCatalog) LocaleConfig(locale plfhelper.Locale) (*plfhelper.LocaleConfig, error) {
	return c.LocaleConfigFn(locale)
}

func (c *LocaleCatalog) Products(locale plfhelper.Locale) (*plfhelper.ProductCatalog, error) {
	return c.ProductsFn(locale)
}
