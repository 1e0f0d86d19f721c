package main

import (
	"fmt"

	"github.com/fwojciec/plfhelper"
	"golang.org/x/text/message"
)

// Run executes the level command.
func (c *LevelCmd) Run(deps *Dependencies) error {
	locale, err := plfhelper.ParseLocale(c.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	level := plfhelper.LevelForPoints(c.Points)
	if level == plfhelper.LevelUnknown {
		fmt.Fprintf(deps.Stderr, "error: points must not be negative\n")
		return plfhelper.Errorf(plfhelper.EINVALID, "negative point total %d", c.Points)
	}

	p := message.NewPrinter(locale.Tag())
	p.Fprintf(deps.Stdout, "Level %d of %d: %s\n", int(level)+1, plfhelper.LevelCount(), level)

	next, ok := level.Next()
	if !ok {
		fmt.Fprintln(deps.Stdout, "Highest level reached")
		return nil
	}
	p.Fprintf(deps.Stdout, "%d points to %s (%d)\n", next.Points()-c.Points, next, next.Points())
	return nil
}
