package watch

import (
	"context"
	"fmt"

	"github.com/fwojciec/plfhelper"
	"golang.org/x/sync/errgroup"
)

// Session is one independent watch: its own watcher, parser and value
// vector. With Sources set the session replays them instead of polling.
type Session struct {
	Watcher *Watcher
	Values  []float64
	Sources []plfhelper.SnapshotSource
}

// RunSessions runs sessions concurrently, at most concurrency at a time.
// Snapshots within a session are still processed in order. progress may
// be called from several goroutines at once.
//
// The returned stats are in session order. The first session error
// cancels the others.
func RunSessions(ctx context.Context, sessions []Session, concurrency int, progress ProgressFunc) ([]*Stats, error) {
	if concurrency <= 0 {
		concurrency = len(sessions)
	}

	stats := make([]*Stats, len(sessions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	for i, s := range sessions {
		g.Go(func() error {
			var (
				st  *Stats
				err error
			)
			if s.Sources != nil {
				st, err = s.Watcher.Replay(gctx, s.Sources, s.Values, progress)
			} else {
				st, err = s.Watcher.Run(gctx, s.Values, progress)
			}
			stats[i] = st
			if err != nil {
				return fmt.Errorf("session %s: %w", s.Watcher.Session, err)
			}
			return nil
		})
	}

	err := g.Wait()
	return stats, err
}
