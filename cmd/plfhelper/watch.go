package main

import (
	"fmt"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/bloom"
	plfslog "github.com/fwojciec/plfhelper/slog"
	"github.com/fwojciec/plfhelper/watch"
)

// Expected distinct snapshots per session, used to size the bloom filter.
const (
	expectedSnapshots = 10000
	falsePositiveRate = 0.01
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if deps.Source == nil {
		err := plfhelper.Errorf(plfhelper.EINVALID, "one of --file, --url or --http is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	locale, err := plfhelper.ParseLocale(c.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}
	setup, err := newLocaleSetup(deps.Catalog, locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}
	p, err := setup.newParser()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	values := setup.Layout.NewVector()
	if !c.Fresh {
		if err := c.resume(deps, setup, values); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
	}

	w := &watch.Watcher{
		Source:       deps.Source,
		Parser:       plfslog.NewLoggingParser(p, deps.logger()),
		Catalog:      setup.Products,
		Observations: deps.Observations,
		Seen:         bloom.NewFilter(expectedSnapshots, falsePositiveRate),
		Session:      c.Session,
		Locale:       locale,
		Interval:     c.Interval,
		MaxPolls:     c.Count,
	}

	progress := func(event watch.Event) {
		switch event.Type {
		case watch.EventStarted:
			fmt.Fprintf(deps.Stdout, "Watching session %q (%s), Ctrl-C to stop\n", c.Session, locale)
		case watch.EventChanged:
			fmt.Fprintf(deps.Stdout, "  #%d %s\n", event.Completed, describeOutcome(event.Outcome))
		case watch.EventFailed:
			fmt.Fprintf(deps.Stderr, "  skip #%d: %v\n", event.Completed, event.Error)
		}
	}

	stats, err := w.Run(deps.Ctx, values, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	printStats(deps, stats)
	printValues(deps.Stdout, setup, values)
	return nil
}

// resume copies the session's latest recorded vector into values when it
// was recorded for the same locale and layout.
func (c *WatchCmd) resume(deps *Dependencies, setup *localeSetup, values []float64) error {
	if deps.Observations == nil {
		return nil
	}
	observations, err := deps.Observations.FindObservations(deps.Ctx, plfhelper.ObservationFilter{
		Session: &c.Session,
		Limit:   1,
	})
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		return nil
	}
	last := observations[0]
	if last.Locale != setup.Locale || len(last.Values) != len(values) {
		return nil
	}
	copy(values, last.Values)
	fmt.Fprintf(deps.Stdout, "Resuming session %q from %s\n", c.Session, last.ObservedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func printStats(deps *Dependencies, stats *watch.Stats) {
	fmt.Fprintf(deps.Stdout, "%d snapshots: %d changed, %d unchanged, %d repeated, %d unrecognized, %d failed",
		stats.Polls, stats.Changed, stats.Unchanged, stats.Skipped, stats.Unrecognized, stats.Failed)
	if stats.Distinct > 0 {
		fmt.Fprintf(deps.Stdout, " (~%d distinct)", stats.Distinct)
	}
	fmt.Fprintln(deps.Stdout)
}
