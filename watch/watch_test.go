package watch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/catalog"
	"github.com/fwojciec/plfhelper/mock"
	"github.com/fwojciec/plfhelper/parse"
	"github.com/fwojciec/plfhelper/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns a source yielding texts in order, then repeating the last.
func sequence(texts ...string) *mock.SnapshotSource {
	var mu sync.Mutex
	i := 0
	return &mock.SnapshotSource{
		SnapshotFn: func(ctx context.Context) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			text := texts[min(i, len(texts)-1)]
			i++
			return text, nil
		},
	}
}

func staticSource(text string) *mock.SnapshotSource {
	return &mock.SnapshotSource{
		SnapshotFn: func(context.Context) (string, error) { return text, nil },
	}
}

func englishParser(t *testing.T) *parse.Parser {
	t.Helper()
	p, err := parse.NewParserForLocale(catalog.New(), "en", parse.WithReservedIndices(3, 4))
	require.NoError(t, err)
	return p
}

var testProducts = plfhelper.NewProductCatalog("Lettuce", "Carrots", "Red cabbage")

const (
	rowA = "3 Lettuce filler 1.50 wT 2.00 wT"
	rowB = "3 Lettuce filler 1.75 wT 2.00 wT"
)

func recorder() (*mock.ObservationService, *[]*plfhelper.Observation) {
	var mu sync.Mutex
	var recorded []*plfhelper.Observation
	return &mock.ObservationService{
		CreateObservationFn: func(_ context.Context, obs *plfhelper.Observation) error {
			mu.Lock()
			defer mu.Unlock()
			recorded = append(recorded, obs)
			return nil
		},
	}, &recorded
}

func TestWatcher_Poll(t *testing.T) {
	t.Parallel()

	t.Run("parses the snapshot and records a changed vector", func(t *testing.T) {
		t.Parallel()

		observations, recorded := recorder()
		at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		w := &watch.Watcher{
			Source:       staticSource(rowA),
			Parser:       englishParser(t),
			Catalog:      testProducts,
			Observations: observations,
			Session:      "morning",
			Locale:       plfhelper.LocaleEnglish,
			Now:          func() time.Time { return at },
		}
		values := make([]float64, 5)

		res, err := w.Poll(context.Background(), values)

		require.NoError(t, err)
		assert.False(t, res.Skipped)
		assert.Equal(t, watch.ComputeHash(rowA), res.Hash)
		assert.Equal(t, plfhelper.PageMarket, res.Outcome.Kind)
		assert.Equal(t, 1.5, values[0])
		require.Len(t, *recorded, 1)
		obs := (*recorded)[0]
		assert.Equal(t, "morning", obs.Session)
		assert.Equal(t, plfhelper.LocaleEnglish, obs.Locale)
		assert.Equal(t, plfhelper.PageMarket, obs.Kind)
		assert.Equal(t, res.Hash, obs.SnapshotHash)
		assert.Equal(t, []float64{1.5, 0, 0, 0, 0}, obs.Values)
		assert.Equal(t, at, obs.ObservedAt)
	})

	t.Run("records a copy of the vector", func(t *testing.T) {
		t.Parallel()

		observations, recorded := recorder()
		w := &watch.Watcher{
			Source:       staticSource(rowA),
			Parser:       englishParser(t),
			Catalog:      testProducts,
			Observations: observations,
			Session:      "s",
			Locale:       plfhelper.LocaleEnglish,
		}
		values := make([]float64, 5)

		_, err := w.Poll(context.Background(), values)
		require.NoError(t, err)
		values[0] = 99

		assert.Equal(t, 1.5, (*recorded)[0].Values[0])
	})

	t.Run("skips a snapshot identical to the previous one", func(t *testing.T) {
		t.Parallel()

		calls := 0
		parser := &mock.PageParser{
			ParsePageFn: func(string, []float64, *plfhelper.ProductCatalog) (*plfhelper.ParseOutcome, error) {
				calls++
				return &plfhelper.ParseOutcome{}, nil
			},
		}
		w := &watch.Watcher{Source: staticSource(rowA), Parser: parser, Catalog: testProducts}

		first, err := w.Poll(context.Background(), nil)
		require.NoError(t, err)
		second, err := w.Poll(context.Background(), nil)
		require.NoError(t, err)

		assert.False(t, first.Skipped)
		assert.True(t, second.Skipped)
		assert.Equal(t, 1, calls)
	})

	t.Run("parses a snapshot that returns to an earlier state", func(t *testing.T) {
		t.Parallel()

		observations, recorded := recorder()
		w := &watch.Watcher{
			Source:       sequence(rowA, rowB, rowA),
			Parser:       englishParser(t),
			Catalog:      testProducts,
			Observations: observations,
			Session:      "s",
			Locale:       plfhelper.LocaleEnglish,
		}
		values := make([]float64, 5)

		for range 3 {
			_, err := w.Poll(context.Background(), values)
			require.NoError(t, err)
		}

		assert.Len(t, *recorded, 3)
		assert.Equal(t, 1.5, values[0])
	})

	t.Run("does not record unchanged vectors", func(t *testing.T) {
		t.Parallel()

		observations, recorded := recorder()
		w := &watch.Watcher{
			Source:       sequence(rowA, rowA+" "),
			Parser:       englishParser(t),
			Catalog:      testProducts,
			Observations: observations,
			Session:      "s",
			Locale:       plfhelper.LocaleEnglish,
		}
		values := make([]float64, 5)

		_, err := w.Poll(context.Background(), values)
		require.NoError(t, err)
		res, err := w.Poll(context.Background(), values)
		require.NoError(t, err)

		assert.False(t, res.Skipped)
		assert.False(t, res.Outcome.Changed)
		assert.Len(t, *recorded, 1)
	})

	t.Run("adds every snapshot hash to the seen filter", func(t *testing.T) {
		t.Parallel()

		var added []string
		seen := &mock.SnapshotFilter{
			AddFn: func(key string) { added = append(added, key) },
		}
		w := &watch.Watcher{
			Source:  staticSource(rowA),
			Parser:  englishParser(t),
			Catalog: testProducts,
			Seen:    seen,
		}

		_, err := w.Poll(context.Background(), make([]float64, 5))
		require.NoError(t, err)
		_, err = w.Poll(context.Background(), make([]float64, 5))
		require.NoError(t, err)

		assert.Equal(t, []string{watch.ComputeHash(rowA), watch.ComputeHash(rowA)}, added)
	})

	t.Run("preserves the parse error code", func(t *testing.T) {
		t.Parallel()

		w := &watch.Watcher{
			Source:  staticSource("3 Lettuce filler 1.2.3 wT 2.00 wT"),
			Parser:  englishParser(t),
			Catalog: testProducts,
		}

		_, err := w.Poll(context.Background(), make([]float64, 5))

		assert.Equal(t, plfhelper.EMALFORMED, plfhelper.ErrorCode(err))
	})

	t.Run("wraps storage failures in ErrRecord", func(t *testing.T) {
		t.Parallel()

		w := &watch.Watcher{
			Source:  staticSource(rowA),
			Parser:  englishParser(t),
			Catalog: testProducts,
			Observations: &mock.ObservationService{
				CreateObservationFn: func(context.Context, *plfhelper.Observation) error {
					return errors.New("disk full")
				},
			},
			Session: "s",
			Locale:  plfhelper.LocaleEnglish,
		}

		_, err := w.Poll(context.Background(), make([]float64, 5))

		assert.ErrorIs(t, err, watch.ErrRecord)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("polls until MaxPolls and reports each snapshot", func(t *testing.T) {
		t.Parallel()

		var events []watch.EventType
		w := &watch.Watcher{
			Source:   sequence("nothing here", rowA, rowA, rowB, "3 Lettuce filler 1.2.3 wT 2.00 wT"),
			Parser:   englishParser(t),
			Catalog:  testProducts,
			Session:  "s",
			Interval: time.Millisecond,
			MaxPolls: 5,
		}
		values := make([]float64, 5)

		stats, err := w.Run(context.Background(), values, func(e watch.Event) {
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []watch.EventType{
			watch.EventStarted,
			watch.EventUnrecognized,
			watch.EventChanged,
			watch.EventSkipped,
			watch.EventChanged,
			watch.EventFailed,
			watch.EventFinished,
		}, events)
		assert.Equal(t, 5, stats.Polls)
		assert.Equal(t, 1, stats.Unrecognized)
		assert.Equal(t, 2, stats.Changed)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 1, stats.Failed)
		assert.Equal(t, 1.75, values[0])
	})

	t.Run("stops without error when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		polls := 0
		w := &watch.Watcher{
			Source: &mock.SnapshotSource{
				SnapshotFn: func(context.Context) (string, error) {
					polls++
					if polls == 2 {
						cancel()
					}
					return rowA, nil
				},
			},
			Parser:   englishParser(t),
			Catalog:  testProducts,
			Interval: time.Millisecond,
		}

		stats, err := w.Run(ctx, make([]float64, 5), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, stats.Polls)
	})

	t.Run("stops on storage failures", func(t *testing.T) {
		t.Parallel()

		w := &watch.Watcher{
			Source:  staticSource(rowA),
			Parser:  englishParser(t),
			Catalog: testProducts,
			Observations: &mock.ObservationService{
				CreateObservationFn: func(context.Context, *plfhelper.Observation) error {
					return errors.New("disk full")
				},
			},
			Session:  "s",
			Locale:   plfhelper.LocaleEnglish,
			Interval: time.Millisecond,
		}

		stats, err := w.Run(context.Background(), make([]float64, 5), nil)

		assert.ErrorIs(t, err, watch.ErrRecord)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("reports the distinct snapshot estimate", func(t *testing.T) {
		t.Parallel()

		w := &watch.Watcher{
			Source:  sequence(rowA, rowB),
			Parser:  englishParser(t),
			Catalog: testProducts,
			Seen: &mock.SnapshotFilter{
				AddFn:            func(string) {},
				EstimatedCountFn: func() uint { return 2 },
			},
			Interval: time.Millisecond,
			MaxPolls: 3,
		}

		stats, err := w.Run(context.Background(), make([]float64, 5), nil)

		require.NoError(t, err)
		assert.Equal(t, uint(2), stats.Distinct)
	})
}

func TestWatcher_Replay(t *testing.T) {
	t.Parallel()

	t.Run("parses each source in order", func(t *testing.T) {
		t.Parallel()

		observations, recorded := recorder()
		w := &watch.Watcher{
			Parser:       englishParser(t),
			Catalog:      testProducts,
			Observations: observations,
			Session:      "replay",
			Locale:       plfhelper.LocaleEnglish,
			RetryDelays:  []time.Duration{},
		}
		sources := []plfhelper.SnapshotSource{staticSource(rowA), staticSource(rowB), staticSource(rowA)}
		values := make([]float64, 5)

		stats, err := w.Replay(context.Background(), sources, values, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Polls)
		assert.Equal(t, 3, stats.Changed)
		assert.Equal(t, 1.5, values[0])
		require.Len(t, *recorded, 3)
		assert.Equal(t, 1.75, (*recorded)[1].Values[0])
	})

	t.Run("continues past a missing snapshot", func(t *testing.T) {
		t.Parallel()

		missing := &mock.SnapshotSource{
			SnapshotFn: func(context.Context) (string, error) {
				return "", plfhelper.Errorf(plfhelper.ENOTFOUND, "snapshot file not found")
			},
		}
		w := &watch.Watcher{Parser: englishParser(t), Catalog: testProducts}
		values := make([]float64, 5)

		stats, err := w.Replay(context.Background(), []plfhelper.SnapshotSource{missing, staticSource(rowB)}, values, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, stats.Failed)
		assert.Equal(t, 1, stats.Changed)
		assert.Equal(t, 1.75, values[0])
	})
}
