package parse

import (
	"github.com/fwojciec/plfhelper"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Resolver maps product names to catalog indexes using case-insensitive,
// locale-aware comparison. It remembers only the most recent lookup,
// keyed by catalog content and query.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	collator *collate.Collator

	cached    bool
	lastKey   uint64
	lastQuery string
	lastIndex int

	scans int
}

// NewResolver creates a Resolver comparing names under tag's collation.
func NewResolver(tag language.Tag) *Resolver {
	return &Resolver{
		collator: collate.New(tag, collate.IgnoreCase),
	}
}

// Resolve returns the index of the first catalog entry equal to query,
// or -1 if there is none.
func (r *Resolver) Resolve(catalog *plfhelper.ProductCatalog, query string) int {
	if r.cached && r.lastKey == catalog.Key() && r.lastQuery == query {
		return r.lastIndex
	}

	r.scans++
	index := -1
	for i := 0; i < catalog.Len(); i++ {
		if r.collator.CompareString(query, catalog.Name(i)) == 0 {
			index = i
			break
		}
	}

	r.cached = true
	r.lastKey = catalog.Key()
	r.lastQuery = query
	r.lastIndex = index
	return index
}

// Scans returns how many times Resolve walked a catalog.
func (r *Resolver) Scans() int {
	return r.scans
}
