package mock

import (
	"context"

	"github.com/fwojciec/plfhelper"
)

var (
	_ plfhelper.SnapshotSource = (*SnapshotSource)(nil)
	_ plfhelper.TextExtractor  = (*TextExtractor)(nil)
	_ plfhelper.SnapshotFilter = (*SnapshotFilter)(nil)
)

// SnapshotSource is a mock implementation of plfhelper.SnapshotSource.
type SnapshotSource struct {
	SnapshotFn func(ctx context.Context) (string, error)
}

func (s *SnapshotSource) Snapshot(ctx context.Context) (string, error) {
	return s.SnapshotFn(ctx)
}

// TextExtractor is a mock implementation of plfhelper.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

// SnapshotFilter is a mock implementation of plfhelper.SnapshotFilter.
type SnapshotFilter struct {
	AddFn            func(key string)
	TestFn           func(key string) bool
	EstimatedCountFn func() uint
}

func (f *SnapshotFilter) Add(key string) {
	f.AddFn(key)
}

func (f *SnapshotFilter) Test(key string) bool {
	return f.TestFn(key)
}

func (f *SnapshotFilter) EstimatedCount() uint {
	return f.EstimatedCountFn()
}
