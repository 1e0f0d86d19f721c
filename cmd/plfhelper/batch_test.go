package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/plfhelper"
	main "github.com/fwojciec/plfhelper/cmd/plfhelper"
	"github.com/fwojciec/plfhelper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("replays each directory as its own session", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		alice := filepath.Join(root, "alice")
		bob := filepath.Join(root, "bob")
		for _, dir := range []string{alice, bob} {
			require.NoError(t, os.Mkdir(dir, 0755))
		}
		writeFile(t, alice, "01.txt", marketEN)
		writeFile(t, alice, "02.txt", townHallEN)
		writeFile(t, bob, "01.txt", "3 Lettuce filler 2.25 wT 3.00 wT\n")

		var mu sync.Mutex
		sessions := map[string]int{}
		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Observations = &mock.ObservationService{
			CreateObservationFn: func(_ context.Context, obs *plfhelper.Observation) error {
				mu.Lock()
				defer mu.Unlock()
				sessions[obs.Session]++
				return nil
			},
		}

		cmd := &main.BatchCmd{Dirs: []string{alice, bob}, Locale: "en", Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"alice": 2, "bob": 1}, sessions)
		assert.Contains(t, stdout.String(), "Session alice")
		assert.Contains(t, stdout.String(), "Session bob")
		assert.Contains(t, stdout.String(), "2.25")
	})

	t.Run("records nothing on a dry run", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "session")
		require.NoError(t, os.Mkdir(dir, 0755))
		writeFile(t, dir, "01.txt", marketEN)
		deps := newDeps(&bytes.Buffer{}, &bytes.Buffer{})
		deps.Observations = &mock.ObservationService{}

		cmd := &main.BatchCmd{Dirs: []string{dir}, Locale: "en", Concurrency: 1, DryRun: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
	})

	t.Run("fails for a missing directory", func(t *testing.T) {
		t.Parallel()

		cmd := &main.BatchCmd{Dirs: []string{filepath.Join(t.TempDir(), "missing")}, Locale: "en"}
		err := cmd.Run(newDeps(&bytes.Buffer{}, &bytes.Buffer{}))

		assert.Equal(t, plfhelper.ENOTFOUND, plfhelper.ErrorCode(err))
	})
}
