package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/plfhelper"
)

// Detector identifies which game server locale a saved page came from.
// It checks the document's language declarations first and falls back to
// looking for each locale's section headers in the visible text.
type Detector struct {
	catalog plfhelper.LocaleCatalog
}

// NewDetector creates a Detector using catalog's phrase tables.
func NewDetector(catalog plfhelper.LocaleCatalog) *Detector {
	return &Detector{catalog: catalog}
}

// Detect returns the page's locale, or LocaleUnknown.
func (d *Detector) Detect(html string) plfhelper.Locale {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return plfhelper.LocaleUnknown
	}

	if locale := d.detectFromLang(doc); locale != plfhelper.LocaleUnknown {
		return locale
	}
	return d.detectFromPhrases(doc.Find("body").Text())
}

// detectFromLang checks <html lang> and the content-language meta tag.
func (d *Detector) detectFromLang(doc *goquery.Document) plfhelper.Locale {
	var candidates []string
	if lang, ok := doc.Find("html").Attr("lang"); ok {
		candidates = append(candidates, lang)
	}
	doc.Find("meta[http-equiv]").Each(func(_ int, s *goquery.Selection) {
		if equiv, _ := s.Attr("http-equiv"); strings.EqualFold(equiv, "content-language") {
			if content, ok := s.Attr("content"); ok {
				candidates = append(candidates, content)
			}
		}
	})

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if len(c) < 2 {
			continue
		}
		// "de-DE" and "de_DE" both start with the language code.
		if locale, err := plfhelper.ParseLocale(c[:2]); err == nil {
			return locale
		}
	}
	return plfhelper.LocaleUnknown
}

// detectFromPhrases picks the locale whose section headers occur most often.
func (d *Detector) detectFromPhrases(text string) plfhelper.Locale {
	best, bestHits := plfhelper.LocaleUnknown, 0
	for _, locale := range plfhelper.Locales() {
		cfg, err := d.catalog.LocaleConfig(locale)
		if err != nil {
			continue
		}

		hits := 0
		for _, phrase := range []string{cfg.MarketWelcome, cfg.CurrentOffers, cfg.ListOfAllPlayers, cfg.PlayersTotal, cfg.ShowMyRanking} {
			if phrase != "" && strings.Contains(text, phrase) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = locale, hits
		}
	}
	return best
}
