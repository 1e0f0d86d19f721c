package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/etree"
	"github.com/fwojciec/plfhelper/fs"
	"github.com/fwojciec/plfhelper/goquery"
	plfslog "github.com/fwojciec/plfhelper/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	locale, err := c.locale(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	setup, err := newLocaleSetup(deps.Catalog, locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	values := setup.Layout.NewVector()
	if c.Resume != "" {
		if values, err = readPriceList(c.Resume, setup); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
	}

	p, err := setup.newParser()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}
	parser := plfslog.NewLoggingParser(p, deps.logger())
	extractor := goquery.NewTextExtractor(c.Root)

	var failed int
	for _, path := range c.Files {
		text, err := fs.NewFileSource(path, extractor).Snapshot(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", path, plfhelper.ErrorMessage(err))
			failed++
			continue
		}

		outcome, err := parser.ParsePage(text, values, setup.Products)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", path, plfhelper.ErrorMessage(err))
			failed++
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %s\n", path, describeOutcome(outcome))
	}

	printValues(deps.Stdout, setup, values)

	if c.Out != "" {
		if err := writePriceList(c.Out, setup, values); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed", failed, len(c.Files))
	}
	return nil
}

// locale returns the --locale value, or the locale detected from the
// first HTML snapshot when the flag is empty.
func (c *ParseCmd) locale(deps *Dependencies) (plfhelper.Locale, error) {
	if c.Locale != "" {
		return plfhelper.ParseLocale(c.Locale)
	}

	detector := goquery.NewDetector(deps.Catalog)
	for _, path := range c.Files {
		if !fs.IsHTML(path) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if locale := detector.Detect(string(data)); locale != plfhelper.LocaleUnknown {
			return locale, nil
		}
	}
	return plfhelper.LocaleUnknown, plfhelper.Errorf(plfhelper.EINVALID, "cannot detect locale; use --locale")
}

func describeOutcome(o *plfhelper.ParseOutcome) string {
	switch {
	case o.Kind == plfhelper.PageUnknown:
		return "not recognized"
	case o.Kind == plfhelper.PageMarket && o.Product == "":
		return "market, product not in catalog"
	case o.Changed && o.Product != "":
		return fmt.Sprintf("%s, %s changed", o.Kind, o.Product)
	case o.Changed:
		return fmt.Sprintf("%s, changed", o.Kind)
	}
	return fmt.Sprintf("%s, unchanged", o.Kind)
}

func readPriceList(path string, setup *localeSetup) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, plfhelper.Errorf(plfhelper.ENOTFOUND, "price list %q: %v", path, err)
	}
	defer f.Close()

	pl, err := etree.Decode(f, setup.Products, setup.Layout)
	if err != nil {
		return nil, err
	}
	if pl.Locale != setup.Locale {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "price list locale %s does not match %s", pl.Locale, setup.Locale)
	}
	return pl.Values, nil
}

func writePriceList(path string, setup *localeSetup, values []float64) error {
	var buf bytes.Buffer
	if err := etree.Encode(&buf, &etree.PriceList{
		Locale:  setup.Locale,
		Catalog: setup.Products,
		Layout:  setup.Layout,
		Values:  values,
	}); err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, buf.Bytes())
}
