package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/plfhelper/cmd/plfhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketEN = "3 Lettuce filler 1.50 wT 2.00 wT\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	return &main.Main{DBPath: filepath.Join(t.TempDir(), "test.db")}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints help and fails without a command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "watch")
		assert.Contains(t, stdout.String(), "batch")
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("lists locales without opening the database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"locales"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "en-GB")
		assert.Contains(t, stdout.String(), "de")
		assert.Contains(t, stdout.String(), "nl")
		assert.NoFileExists(t, m.DBPath)
	})

	t.Run("applies phrase overrides", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		phrases := writeFile(t, dir, "phrases.yaml", "en:\n  currency: gold\n  products: [Turnips]\n")
		snapshot := writeFile(t, dir, "market.txt", "3 Turnips filler 7.25 gold 8.00 gold\n")
		stdout := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(),
			[]string{"--phrases", phrases, "parse", "-l", "en", snapshot}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Turnips")
		assert.Contains(t, stdout.String(), "7.25")
	})

	t.Run("fails for a missing phrase file", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(),
			[]string{"--phrases", filepath.Join(t.TempDir(), "missing.yaml"), "locales"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("watches a file, then lists and exports the session", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		snapshot := writeFile(t, t.TempDir(), "market.txt", marketEN)
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		err := m.Run(ctx, []string{
			"watch", "--file", snapshot, "-l", "en", "-s", "morning", "--interval", "10ms", "-n", "2",
		}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 snapshots: 1 changed")

		stdout.Reset()
		err = newMainAt(m.DBPath).Run(ctx, []string{"history", "-s", "morning"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "morning")
		assert.Contains(t, stdout.String(), "market")

		stdout.Reset()
		err = newMainAt(m.DBPath).Run(ctx, []string{"export", "morning"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `<pricelist locale="en"`)
		assert.Contains(t, stdout.String(), `<product index="0" name="Lettuce">1.5</product>`)
	})

	t.Run("requires a watch source", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), []string{"watch", "-n", "1"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}

func newMainAt(path string) *main.Main {
	return &main.Main{DBPath: path}
}
