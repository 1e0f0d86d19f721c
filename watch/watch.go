// Package watch drives a parser from a stream of snapshots. It skips
// repeated snapshots, paces live polling and records an observation
// whenever the value vector changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/plfhelper"
	"golang.org/x/time/rate"
)

// DefaultInterval is the default time between live snapshots.
const DefaultInterval = 5 * time.Second

// ErrRecord wraps failures to store an observation. Run stops on them
// since the session's history would silently develop gaps.
var ErrRecord = errors.New("record observation")

// Watcher feeds snapshots from one session into a parser.
//
// A Watcher keeps the hash of the last snapshot it parsed and must not be
// shared between goroutines.
type Watcher struct {
	Source       plfhelper.SnapshotSource
	Parser       plfhelper.PageParser
	Catalog      *plfhelper.ProductCatalog
	Observations plfhelper.ObservationService // optional
	Seen         plfhelper.SnapshotFilter     // optional
	Session      string
	Locale       plfhelper.Locale
	Interval     time.Duration
	RetryDelays  []time.Duration

	// MaxPolls stops Run after that many snapshots. Zero means no limit.
	MaxPolls int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	lastHash uint64
	hasLast  bool
}

// PollResult describes one snapshot.
type PollResult struct {
	Hash        string
	Skipped     bool
	Outcome     *plfhelper.ParseOutcome
	Observation *plfhelper.Observation
}

// Stats summarizes a Run or Replay.
type Stats struct {
	Polls        int
	Skipped      int
	Unrecognized int
	Unchanged    int
	Changed      int
	Failed       int

	// Distinct is the approximate number of distinct snapshots seen, or
	// zero without a Seen filter.
	Distinct uint
}

// Poll takes one snapshot from Source and parses it into values.
func (w *Watcher) Poll(ctx context.Context, values []float64) (*PollResult, error) {
	return w.poll(ctx, w.Source, values)
}

func (w *Watcher) poll(ctx context.Context, src plfhelper.SnapshotSource, values []float64) (*PollResult, error) {
	delays := w.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	text, err := SnapshotWithRetryDelays(ctx, src, delays)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	h := xxhash.Sum64String(text)
	result := &PollResult{Hash: formatHash(h)}
	if w.Seen != nil {
		w.Seen.Add(result.Hash)
	}

	// Parsing is idempotent, so an identical snapshot cannot change values.
	if w.hasLast && h == w.lastHash {
		result.Skipped = true
		return result, nil
	}
	w.lastHash, w.hasLast = h, true

	outcome, err := w.Parser.ParsePage(text, values, w.Catalog)
	if err != nil {
		return result, fmt.Errorf("parse snapshot %s: %w", result.Hash, err)
	}
	result.Outcome = outcome

	if !outcome.Changed || w.Observations == nil {
		return result, nil
	}

	obs := &plfhelper.Observation{
		Session:      w.Session,
		Locale:       w.Locale,
		Kind:         outcome.Kind,
		SnapshotHash: result.Hash,
		Values:       append([]float64(nil), values...),
		Changed:      true,
		ObservedAt:   w.now(),
	}
	if err := w.Observations.CreateObservation(ctx, obs); err != nil {
		return result, fmt.Errorf("%w: %w", ErrRecord, err)
	}
	result.Observation = obs
	return result, nil
}

// Run polls Source every Interval until the context ends or MaxPolls is
// reached. Snapshot and parse failures are reported through progress and
// the loop moves on; only ErrRecord failures stop it.
func (w *Watcher) Run(ctx context.Context, values []float64, progress ProgressFunc) (*Stats, error) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	var stats Stats
	emit(progress, Event{Type: EventStarted, Session: w.Session})
	for w.MaxPolls == 0 || stats.Polls < w.MaxPolls {
		if err := limiter.Wait(ctx); err != nil {
			break // context done
		}
		if err := w.step(ctx, w.Source, values, &stats, progress); err != nil {
			return w.finish(&stats, progress), err
		}
		if ctx.Err() != nil {
			break
		}
	}
	return w.finish(&stats, progress), nil
}

// Replay parses each source once, in order, without pacing. It is used
// for saved snapshot sequences.
func (w *Watcher) Replay(ctx context.Context, sources []plfhelper.SnapshotSource, values []float64, progress ProgressFunc) (*Stats, error) {
	var stats Stats
	emit(progress, Event{Type: EventStarted, Session: w.Session, Total: len(sources)})
	for _, src := range sources {
		if ctx.Err() != nil {
			return w.finish(&stats, progress), ctx.Err()
		}
		if err := w.step(ctx, src, values, &stats, progress); err != nil {
			return w.finish(&stats, progress), err
		}
	}
	return w.finish(&stats, progress), nil
}

func (w *Watcher) step(ctx context.Context, src plfhelper.SnapshotSource, values []float64, stats *Stats, progress ProgressFunc) error {
	stats.Polls++
	res, err := w.poll(ctx, src, values)

	ev := Event{Session: w.Session, Completed: stats.Polls}
	if res != nil {
		ev.Hash = res.Hash
		ev.Outcome = res.Outcome
	}

	switch {
	case errors.Is(err, ErrRecord):
		stats.Failed++
		ev.Type, ev.Error = EventFailed, err
		emit(progress, ev)
		return err
	case err != nil:
		if ctx.Err() != nil {
			return nil
		}
		stats.Failed++
		ev.Type, ev.Error = EventFailed, err
	case res.Skipped:
		stats.Skipped++
		ev.Type = EventSkipped
	case res.Outcome.Kind == plfhelper.PageUnknown:
		stats.Unrecognized++
		ev.Type = EventUnrecognized
	case res.Outcome.Changed:
		stats.Changed++
		ev.Type = EventChanged
	default:
		stats.Unchanged++
		ev.Type = EventUnchanged
	}
	emit(progress, ev)
	return nil
}

func (w *Watcher) finish(stats *Stats, progress ProgressFunc) *Stats {
	if w.Seen != nil {
		stats.Distinct = w.Seen.EstimatedCount()
	}
	emit(progress, Event{Type: EventFinished, Session: w.Session, Completed: stats.Polls})
	return stats
}

func (w *Watcher) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// ComputeHash returns the snapshot hash Poll reports for text.
func ComputeHash(text string) string {
	return formatHash(xxhash.Sum64String(text))
}
