package mock

import "github.com/fwojciec/plfhelper"

var _ plfhelper.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of plfhelper.PageParser.
type PageParser struct {
	ParsePageFn func(text string, values []float64, catalog *plfhelper.ProductCatalog) (*plfhelper.ParseOutcome, error)
}

func (p *PageParser) ParsePage(text string, values []float64, catalog *plfhelper.ProductCatalog) (*plfhelper.ParseOutcome, error) {
	return p.ParsePageFn(text, values, catalog)
}
