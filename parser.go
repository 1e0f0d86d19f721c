package plfhelper

// PageKind identifies which game screen a snapshot shows.
type PageKind string

// Recognized page kinds.
const (
	PageUnknown  PageKind = ""
	PageMarket   PageKind = "market"
	PageTownHall PageKind = "townhall"
)

func (k PageKind) String() string {
	if k == PageUnknown {
		return "(unknown)"
	}
	return string(k)
}

// ParseOutcome describes the result of parsing one snapshot.
type ParseOutcome struct {
	// Kind is the recognized page, or PageUnknown.
	Kind PageKind

	// Changed is true if at least one slot moved by more than the
	// parser's tolerance.
	Changed bool

	// Product is the resolved product name for market pages.
	Product string

	// Slots lists the value vector indexes that were written.
	Slots []int
}

// PageParser extracts game state from a text snapshot into a value vector.
//
// Unrecognized pages and product names missing from the catalog are not
// errors; they yield an outcome with Changed set to false. Numbers that
// match a page's shape but cannot be decoded return EMALFORMED, and the
// vector is left untouched.
type PageParser interface {
	ParsePage(text string, values []float64, catalog *ProductCatalog) (*ParseOutcome, error)
}
