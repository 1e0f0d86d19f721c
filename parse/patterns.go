package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/plfhelper"
)

// onePointPattern matches a ranking line whose trailing score is exactly 1,
// e.g. "57. SomePlayer   1" or "1.234. SomePlayer   1". The rank may be
// grouped and is always closed by a dot.
var onePointPattern = regexp.MustCompile(`(?m)^[ \t]*(?P<rank>\d+(?:[.,]\d{3})*)\.[^\n]*?[ \t]1[ \t]*$`)

// marketPattern builds the market row pattern for a catalog. A row looks
// like "<quantity> <product> <filler> <price> <currency> <price> <currency> <filler>".
// Multi-word names are tried longest first so they are captured whole
// before falling back to a single whitespace-free token.
func marketPattern(cfg *plfhelper.LocaleConfig, catalog *plfhelper.ProductCatalog) *regexp.Regexp {
	names := catalog.MultiWord()
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	alts := make([]string, 0, len(names)+1)
	for _, name := range names {
		alts = append(alts, regexp.QuoteMeta(name))
	}
	alts = append(alts, `\S+`)

	currency := regexp.QuoteMeta(cfg.Currency)

	var b strings.Builder
	b.WriteString(`(?m)^[ \t]*[\d.,]+[ \t]+`)
	b.WriteString(`(?P<product>(?i:` + strings.Join(alts, "|") + `))`)
	b.WriteString(`[ \t]+[^\n]+?[ \t]+`)
	b.WriteString(`(?P<value>[\d.,]{3,})[ \t]*` + currency)
	b.WriteString(`[ \t]+[\d.,]{3,}[ \t]*` + currency)
	b.WriteString(`(?:[ \t][^\n]*)?$`)

	return regexp.MustCompile(b.String())
}

// townHallPattern matches the player total, anchored by the "players
// total" and "show my ranking" phrases.
func townHallPattern(cfg *plfhelper.LocaleConfig) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(cfg.PlayersTotal) +
		`\s*(?P<player>\d+(?:[.,]\d+)*)(?s:.*?)` +
		regexp.QuoteMeta(cfg.ShowMyRanking))
}
