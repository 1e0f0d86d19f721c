package rod

import (
	"context"

	"github.com/fwojciec/plfhelper"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure PageSource implements plfhelper.SnapshotSource at compile time.
var _ plfhelper.SnapshotSource = (*PageSource)(nil)

// innerTextJS returns the text a player gets by selecting the whole page.
const innerTextJS = `() => document.body ? document.body.innerText : ""`

// PageSource snapshots a game URL by loading it in the managed browser.
// PageSource is safe for concurrent use by multiple goroutines.
type PageSource struct {
	manager   *BrowserManager
	url       string
	extractor plfhelper.TextExtractor
}

// SourceOption configures a PageSource.
type SourceOption func(*PageSource)

// WithExtractor renders the page's HTML with extractor instead of using
// the browser's own innerText.
func WithExtractor(extractor plfhelper.TextExtractor) SourceOption {
	return func(s *PageSource) {
		s.extractor = extractor
	}
}

// NewPageSource creates a PageSource for url.
func NewPageSource(manager *BrowserManager, url string, opts ...SourceOption) *PageSource {
	s := &PageSource{manager: manager, url: url}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot navigates to the URL and returns the rendered page text.
func (s *PageSource) Snapshot(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := s.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()
	defer s.manager.CountSnapshot()

	page = page.Context(ctx)

	if err := page.Navigate(s.url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if s.extractor != nil {
		html, err := page.HTML()
		if err != nil {
			return "", err
		}
		return s.extractor.ExtractText(html)
	}

	res, err := page.Eval(innerTextJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}
