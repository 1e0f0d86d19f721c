package plfhelper

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ProductCatalog is the ordered list of product names for one locale.
// Names may contain spaces. Uniqueness is not validated; duplicate names
// resolve to the first entry.
type ProductCatalog struct {
	names []string
	key   uint64
}

// NewProductCatalog creates a catalog from names. The slice is copied so
// the catalog's key always describes its contents.
func NewProductCatalog(names ...string) *ProductCatalog {
	c := &ProductCatalog{names: append([]string(nil), names...)}

	h := xxhash.New()
	for _, name := range c.names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	c.key = h.Sum64()
	return c
}

// Key identifies the catalog's contents. Catalogs holding the same names
// in the same order share a key.
func (c *ProductCatalog) Key() uint64 {
	return c.key
}

// Len returns the number of products.
func (c *ProductCatalog) Len() int {
	return len(c.names)
}

// Name returns the product name at index i.
func (c *ProductCatalog) Name(i int) string {
	return c.names[i]
}

// Names returns a copy of the product names.
func (c *ProductCatalog) Names() []string {
	return append([]string(nil), c.names...)
}

// MultiWord returns the names containing whitespace, in catalog order.
func (c *ProductCatalog) MultiWord() []string {
	var out []string
	for _, name := range c.names {
		if strings.ContainsAny(name, " \t") {
			out = append(out, name)
		}
	}
	return out
}

// Layout describes how a value vector is indexed: one slot per product,
// followed by the two reserved player slots.
type Layout struct {
	Products      int
	PlayersIndex  int
	Players1Index int
}

// DefaultLayout places the reserved slots directly after the products.
func DefaultLayout(c *ProductCatalog) Layout {
	n := c.Len()
	return Layout{
		Products:      n,
		PlayersIndex:  n,
		Players1Index: n + 1,
	}
}

// Size returns the number of slots the layout needs.
func (l Layout) Size() int {
	size := l.Products
	if l.PlayersIndex >= size {
		size = l.PlayersIndex + 1
	}
	if l.Players1Index >= size {
		size = l.Players1Index + 1
	}
	return size
}

// NewVector allocates a zeroed value vector for the layout.
func (l Layout) NewVector() []float64 {
	return make([]float64, l.Size())
}
