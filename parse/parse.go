// Package parse implements the locale-aware page parser. It classifies a
// text snapshot as a market or town hall page, extracts the relevant
// fields and writes them into a caller-owned value vector.
package parse

import (
	"math"
	"regexp"
	"strings"

	"github.com/fwojciec/plfhelper"
)

// Ensure Parser implements plfhelper.PageParser at compile time.
var _ plfhelper.PageParser = (*Parser)(nil)

// Tolerance is the smallest difference between a slot's old and new value
// that counts as a change.
const Tolerance = 1e-6

// unset marks a reserved index that has not been assigned.
const unset = -1

// Parser extracts game state from text snapshots for one locale.
//
// A Parser caches compiled patterns and its most recent name lookup, so
// it must be confined to a single session; use Clone to hand an
// equivalent parser to another goroutine.
type Parser struct {
	cfg plfhelper.LocaleConfig

	playersIndex  int
	players1Index int

	townHall *regexp.Regexp
	resolver *Resolver

	// market is compiled for the catalog with key marketKey.
	market    *regexp.Regexp
	marketKey uint64
}

// Option configures a Parser.
type Option func(*Parser)

// WithReservedIndices binds the value vector slots receiving the total
// player count and the rank of the last player holding one point.
func WithReservedIndices(players, players1 int) Option {
	return func(p *Parser) {
		p.playersIndex = players
		p.players1Index = players1
	}
}

// NewParser creates a Parser for cfg. The config is copied.
//
// Returns EINVALID if cfg is not usable or a reserved index is negative.
// A parser created without WithReservedIndices never recognizes a page.
func NewParser(cfg *plfhelper.LocaleConfig, opts ...Option) (*Parser, error) {
	if cfg == nil {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "locale config required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		cfg:           *cfg,
		playersIndex:  unset,
		players1Index: unset,
	}
	for _, opt := range opts {
		opt(p)
	}

	configured := p.playersIndex != unset || p.players1Index != unset
	if configured && (p.playersIndex < 0 || p.players1Index < 0) {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "reserved indices must not be negative (players=%d, players1=%d)", p.playersIndex, p.players1Index)
	}

	p.townHall = townHallPattern(&p.cfg)
	p.resolver = NewResolver(p.cfg.Locale.Tag())
	return p, nil
}

// NewParserForLocale looks up the phrase table for a two-letter locale
// code and creates a Parser for it.
func NewParserForLocale(catalog plfhelper.LocaleCatalog, code string, opts ...Option) (*Parser, error) {
	locale, err := plfhelper.ParseLocale(code)
	if err != nil {
		return nil, err
	}
	cfg, err := catalog.LocaleConfig(locale)
	if err != nil {
		return nil, err
	}
	return NewParser(cfg, opts...)
}

// Clone returns a parser with the same configuration and empty caches.
func (p *Parser) Clone() *Parser {
	return &Parser{
		cfg:           p.cfg,
		playersIndex:  p.playersIndex,
		players1Index: p.players1Index,
		townHall:      p.townHall,
		resolver:      NewResolver(p.cfg.Locale.Tag()),
	}
}

// Locale returns the parser's locale.
func (p *Parser) Locale() plfhelper.Locale {
	return p.cfg.Locale
}

// Configured reports whether both reserved indices are assigned.
func (p *Parser) Configured() bool {
	return p.playersIndex >= 0 && p.players1Index >= 0
}

// Resolver returns the parser's name resolver.
func (p *Parser) Resolver() *Resolver {
	return p.resolver
}

// Parse updates values from text and reports whether any slot changed.
func (p *Parser) Parse(text string, values []float64, catalog *plfhelper.ProductCatalog) (bool, error) {
	outcome, err := p.ParsePage(text, values, catalog)
	if err != nil {
		return false, err
	}
	return outcome.Changed, nil
}

// ParsePage classifies text, extracts its fields into values and
// describes what happened. Market rows take priority over the town hall
// because a market page may carry player counts as noise.
func (p *Parser) ParsePage(text string, values []float64, catalog *plfhelper.ProductCatalog) (*plfhelper.ParseOutcome, error) {
	if !p.Configured() {
		return &plfhelper.ParseOutcome{}, nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")

	if catalog != nil {
		market := p.marketPattern(catalog)
		if m := market.FindStringSubmatch(text); m != nil {
			return p.parseMarket(market, m, values, catalog)
		}
	}

	if strings.Contains(text, p.cfg.ListOfAllPlayers) {
		if m := p.townHall.FindStringSubmatch(text); m != nil {
			return p.parseTownHall(m, text, values)
		}
	}

	return &plfhelper.ParseOutcome{}, nil
}

// marketPattern returns the market pattern for catalog, recompiling only
// when the catalog's contents differ from the last one seen.
func (p *Parser) marketPattern(catalog *plfhelper.ProductCatalog) *regexp.Regexp {
	if p.market == nil || p.marketKey != catalog.Key() {
		p.market = marketPattern(&p.cfg, catalog)
		p.marketKey = catalog.Key()
	}
	return p.market
}

func (p *Parser) parseMarket(re *regexp.Regexp, m []string, values []float64, catalog *plfhelper.ProductCatalog) (*plfhelper.ParseOutcome, error) {
	outcome := &plfhelper.ParseOutcome{Kind: plfhelper.PageMarket}

	index := p.resolver.Resolve(catalog, m[re.SubexpIndex("product")])
	if index < 0 {
		return outcome, nil
	}
	if index >= len(values) {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "product index %d outside value vector of length %d", index, len(values))
	}

	v, err := p.decode(m[re.SubexpIndex("value")])
	if err != nil {
		return nil, err
	}

	outcome.Changed = differs(values[index], v)
	outcome.Product = catalog.Name(index)
	outcome.Slots = []int{index}
	values[index] = v
	return outcome, nil
}

func (p *Parser) parseTownHall(m []string, text string, values []float64) (*plfhelper.ParseOutcome, error) {
	if p.playersIndex >= len(values) || p.players1Index >= len(values) {
		return nil, plfhelper.Errorf(plfhelper.EINVALID, "reserved indices (%d, %d) outside value vector of length %d", p.playersIndex, p.players1Index, len(values))
	}

	players, err := p.decode(m[p.townHall.SubexpIndex("player")])
	if err != nil {
		return nil, err
	}

	// The last one-point line is the lowest-ranked player still holding
	// exactly one point.
	rank, hasRank := 0.0, false
	if lines := onePointPattern.FindAllStringSubmatch(text, -1); len(lines) > 0 {
		last := lines[len(lines)-1]
		rank, err = p.decode(last[onePointPattern.SubexpIndex("rank")])
		if err != nil {
			return nil, err
		}
		hasRank = true
	}

	outcome := &plfhelper.ParseOutcome{
		Kind:    plfhelper.PageTownHall,
		Changed: differs(values[p.playersIndex], players),
		Slots:   []int{p.playersIndex},
	}
	values[p.playersIndex] = players

	if hasRank {
		if differs(values[p.players1Index], rank) {
			outcome.Changed = true
		}
		outcome.Slots = append(outcome.Slots, p.players1Index)
		values[p.players1Index] = rank
	}
	return outcome, nil
}

func (p *Parser) decode(s string) (float64, error) {
	return DecodeNumber(s, p.cfg.DecimalSeparator, p.cfg.GroupSeparator)
}

// differs reports whether next moved away from prev by more than Tolerance.
// An unset (NaN) slot differs from any number.
func differs(prev, next float64) bool {
	if math.IsNaN(prev) {
		return !math.IsNaN(next)
	}
	return math.Abs(next-prev) > Tolerance
}
