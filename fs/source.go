// Package fs reads text snapshots from disk and writes exports atomically.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/plfhelper"
)

// Ensure FileSource implements plfhelper.SnapshotSource at compile time.
var _ plfhelper.SnapshotSource = (*FileSource)(nil)

// FileSource reads a snapshot from a file each time it is asked. HTML
// files are rendered to text with the extractor; anything else is taken
// as already-copied page text.
type FileSource struct {
	path      string
	extractor plfhelper.TextExtractor
}

// NewFileSource creates a FileSource for path. extractor may be nil if
// path is never HTML.
func NewFileSource(path string, extractor plfhelper.TextExtractor) *FileSource {
	return &FileSource{
		path:      path,
		extractor: extractor,
	}
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Snapshot(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", plfhelper.Errorf(plfhelper.ENOTFOUND, "snapshot file %q not found", s.path)
	}
	if err != nil {
		return "", err
	}

	if !IsHTML(s.path) {
		return string(data), nil
	}
	if s.extractor == nil {
		return "", plfhelper.Errorf(plfhelper.EINVALID, "no text extractor for HTML snapshot %q", s.path)
	}
	return s.extractor.ExtractText(string(data))
}

// IsHTML reports whether path names an HTML file.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ListSnapshots returns the snapshot files directly inside dir, sorted by
// name so numbered captures replay in order. Hidden files are skipped.
func ListSnapshots(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, plfhelper.Errorf(plfhelper.ENOTFOUND, "snapshot directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
