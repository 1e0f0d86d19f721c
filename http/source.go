// Package http snapshots server-rendered game pages over plain HTTP,
// for setups where a full browser is unnecessary.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/plfhelper"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// Ensure PageSource implements plfhelper.SnapshotSource at compile time.
var _ plfhelper.SnapshotSource = (*PageSource)(nil)

// PageSource fetches a game page and renders it to text with an extractor.
// Unlike rod.PageSource it does not execute JavaScript.
type PageSource struct {
	client    *http.Client
	url       string
	cookie    string
	timeout   time.Duration
	extractor plfhelper.TextExtractor
}

// Option configures a PageSource.
type Option func(*PageSource)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *PageSource) {
		s.timeout = d
	}
}

// WithCookie sends a raw Cookie header, typically the logged-in game
// session copied from the browser.
func WithCookie(cookie string) Option {
	return func(s *PageSource) {
		s.cookie = cookie
	}
}

// NewPageSource creates a PageSource for url.
func NewPageSource(url string, extractor plfhelper.TextExtractor, opts ...Option) *PageSource {
	s := &PageSource{
		url:       url,
		timeout:   DefaultTimeout,
		extractor: extractor,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}
	return s
}

// Snapshot fetches the page and returns its visible text.
func (s *PageSource) Snapshot(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", plfhelper.Errorf(plfhelper.EINVALID, "invalid URL %q: %v", s.url, err)
	}
	if s.cookie != "" {
		req.Header.Set("Cookie", s.cookie)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return s.extractor.ExtractText(string(body))
}
