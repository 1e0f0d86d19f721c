package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/bloom"
	"github.com/fwojciec/plfhelper/fs"
	"github.com/fwojciec/plfhelper/goquery"
	plfslog "github.com/fwojciec/plfhelper/slog"
	"github.com/fwojciec/plfhelper/watch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
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
	base, err := setup.newParser()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	observations := deps.Observations
	if c.DryRun {
		observations = nil
	}
	extractor := goquery.NewTextExtractor(c.Root)

	sessions := make([]watch.Session, 0, len(c.Dirs))
	for _, dir := range c.Dirs {
		paths, err := fs.ListSnapshots(dir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
		sources := make([]plfhelper.SnapshotSource, len(paths))
		for i, path := range paths {
			sources[i] = fs.NewFileSource(path, extractor)
		}

		sessions = append(sessions, watch.Session{
			Watcher: &watch.Watcher{
				Parser:       plfslog.NewLoggingParser(base.Clone(), deps.logger()),
				Catalog:      setup.Products,
				Observations: observations,
				Seen:         bloom.NewFilter(uint(max(len(paths), 1)), falsePositiveRate),
				Session:      filepath.Base(filepath.Clean(dir)),
				Locale:       locale,
			},
			Values:  setup.Layout.NewVector(),
			Sources: sources,
		})
	}

	var mu sync.Mutex
	progress := func(event watch.Event) {
		mu.Lock()
		defer mu.Unlock()
		switch event.Type {
		case watch.EventStarted:
			fmt.Fprintf(deps.Stdout, "  %s: %d snapshots\n", event.Session, event.Total)
		case watch.EventFailed:
			fmt.Fprintf(deps.Stderr, "  %s: skip #%d: %v\n", event.Session, event.Completed, event.Error)
		}
	}

	results, err := watch.RunSessions(deps.Ctx, sessions, c.Concurrency, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for i, s := range sessions {
		fmt.Fprintf(deps.Stdout, "Session %s\n  ", s.Watcher.Session)
		printStats(deps, results[i])
		printValues(deps.Stdout, setup, s.Values)
	}
	return nil
}
