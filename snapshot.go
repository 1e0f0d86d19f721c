package plfhelper

import "context"

// SnapshotSource captures the visible text of the game.
type SnapshotSource interface {
	// Snapshot returns one newline-separated text capture.
	// The context controls timeout and cancellation.
	Snapshot(ctx context.Context) (string, error)
}

// TextExtractor renders HTML as the text a user would copy from the page.
type TextExtractor interface {
	// ExtractText returns the visible text of html with block elements and
	// table rows on separate lines.
	ExtractText(html string) (string, error)
}

// SnapshotFilter tracks which snapshots have been seen.
// Implementations may report false positives.
type SnapshotFilter interface {
	// Add records a snapshot key.
	Add(key string)

	// Test returns true if the key might have been added.
	Test(key string) bool

	// EstimatedCount returns the approximate number of keys added.
	EstimatedCount() uint
}
