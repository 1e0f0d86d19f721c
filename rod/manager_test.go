//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/plfhelper/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_RecyclesBrowserAfterMaxSnapshots(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxSnapshots(2))
	require.NoError(t, err)
	defer manager.Close()

	first := manager.Browser()
	require.NotNil(t, first)

	manager.CountSnapshot()
	manager.CountSnapshot()

	second := manager.Browser()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestBrowserManager_DoesNotRecycleBeforeMaxSnapshots(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxSnapshots(5))
	require.NoError(t, err)
	defer manager.Close()

	first := manager.Browser()
	manager.CountSnapshot()

	assert.Same(t, first, manager.Browser())
}

func TestBrowserManager_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	assert.NoError(t, manager.Close())
}

func TestBrowserManager_StartsCountingAgainAfterRecycle(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithMaxSnapshots(1))
	require.NoError(t, err)
	defer manager.Close()

	manager.CountSnapshot()
	recycled := manager.Browser()

	assert.Same(t, recycled, manager.Browser())
}
