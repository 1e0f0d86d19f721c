// Package rod captures snapshots from a live game session in a headless
// Chrome browser.
package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxSnapshots is the default number of snapshots before the
// browser is recycled.
const DefaultMaxSnapshots = 500

// BrowserManager keeps one Chrome process alive for the length of a watch
// session. A watch polls the same game page for hours, so after every
// max snapshots the process is swapped for a fresh one between polls.
// The game session itself lives in the page cookie and survives the swap.
//
// Safe for concurrent use by several page sources.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	proc     *launcher.Launcher
	headless bool

	taken  atomic.Int64
	max    int64
	closed atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxSnapshots sets how many snapshots a browser serves before it is
// recycled.
func WithMaxSnapshots(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.max = n
	}
}

// WithHeadless controls whether the browser window is hidden. A visible
// window lets the player log in before watching starts.
func WithHeadless(headless bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.headless = headless
	}
}

// NewBrowserManager starts Chrome and returns a manager for it. The caller
// closes it when the watch ends. Fails when no Chrome or Chromium binary
// can be started.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		max:      DefaultMaxSnapshots,
		headless: true,
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, proc, err := startChrome(bm.headless)
	if err != nil {
		return nil, err
	}
	bm.browser, bm.proc = browser, proc
	return bm, nil
}

// Browser returns the browser for the next snapshot. Once the current
// process has served max snapshots a new one is started; if that fails
// the old process keeps serving.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.taken.Load() < bm.max {
		return bm.browser
	}

	browser, proc, err := startChrome(bm.headless)
	if err != nil {
		return bm.browser
	}
	stop(bm.browser, bm.proc)
	bm.browser, bm.proc = browser, proc
	bm.taken.Store(0)
	return bm.browser
}

// CountSnapshot records a snapshot taken with the current browser.
func (bm *BrowserManager) CountSnapshot() {
	bm.taken.Add(1)
}

// Close shuts Chrome down. Later calls do nothing.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()
	err := stop(bm.browser, bm.proc)
	bm.browser, bm.proc = nil, nil
	return err
}

// startChrome launches a Chrome process tuned for a page that sits in a
// background tab between polls, and connects to it.
func startChrome(headless bool) (*rod.Browser, *launcher.Launcher, error) {
	proc := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(headless)

	u, err := proc.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching chrome: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		proc.Kill()
		return nil, nil, fmt.Errorf("connecting to chrome: %w", err)
	}
	return browser, proc, nil
}

func stop(browser *rod.Browser, proc *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if proc != nil {
		proc.Kill()
	}
	return err
}
