package main

import (
	"fmt"

	"github.com/fwojciec/plfhelper"
)

// Run executes the locales command.
func (c *LocalesCmd) Run(deps *Dependencies) error {
	for _, locale := range plfhelper.Locales() {
		setup, err := newLocaleSetup(deps.Catalog, locale)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %-6s  decimal %q  group %q  currency %s  %d products\n",
			locale, locale.Tag(), setup.Config.DecimalSeparator, setup.Config.GroupSeparator,
			setup.Config.Currency, setup.Products.Len())
	}
	return nil
}
