package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/etree"
	"github.com/fwojciec/plfhelper/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	observations, err := deps.Observations.FindObservations(deps.Ctx, plfhelper.ObservationFilter{
		Session: &c.Session,
		Limit:   1,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}
	if len(observations) == 0 {
		fmt.Fprintf(deps.Stderr, "error: session %q has no observations. Use 'plfhelper history' to see recorded sessions.\n", c.Session)
		return plfhelper.Errorf(plfhelper.ENOTFOUND, "session %q not found", c.Session)
	}
	last := observations[0]

	setup, err := newLocaleSetup(deps.Catalog, last.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	var buf bytes.Buffer
	if err := etree.Encode(&buf, &etree.PriceList{
		Locale:     last.Locale,
		Catalog:    setup.Products,
		Layout:     setup.Layout,
		Values:     last.Values,
		ObservedAt: last.ObservedAt,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		_, err := deps.Stdout.Write(buf.Bytes())
		return err
	}
	if err := fs.WriteFileAtomic(c.Out, buf.Bytes()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported session %q to %s\n", c.Session, c.Out)
	return nil
}
