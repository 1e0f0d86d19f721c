package plfhelper

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies the language of a game server.
type Locale string

// Supported locales. LocaleUnknown is never usable for parsing.
const (
	LocaleUnknown Locale = ""
	LocaleEnglish Locale = "en"
	LocaleGerman  Locale = "de"
	LocaleDutch   Locale = "nl"
)

// Locales returns all supported locales in a stable order.
func Locales() []Locale {
	return []Locale{LocaleEnglish, LocaleGerman, LocaleDutch}
}

// ParseLocale converts a case-insensitive two-letter code into a Locale.
// Returns EINVALID for malformed or unsupported codes.
func ParseLocale(code string) (Locale, error) {
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return LocaleUnknown, Errorf(EINVALID, "malformed locale code %q", code)
	}
	l := Locale(strings.ToLower(code))
	if !l.Valid() {
		return LocaleUnknown, Errorf(EINVALID, "unsupported locale %q", code)
	}
	return l, nil
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	switch l {
	case LocaleEnglish, LocaleGerman, LocaleDutch:
		return true
	}
	return false
}

// Tag returns the language tag whose conventions the game server uses.
// English servers follow British conventions.
func (l Locale) Tag() language.Tag {
	switch l {
	case LocaleEnglish:
		return language.BritishEnglish
	case LocaleGerman:
		return language.German
	case LocaleDutch:
		return language.Dutch
	}
	return language.Und
}

func (l Locale) String() string {
	if l == LocaleUnknown {
		return "(unknown)"
	}
	return string(l)
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// LocaleConfig holds the literal phrases and numeric convention of one
// locale. Treat it as immutable once constructed; parsers copy it.
type LocaleConfig struct {
	Locale Locale `yaml:"-"`

	// Currency is the in-game currency symbol printed after prices.
	Currency string `yaml:"currency"`

	// Section headers.
	MarketWelcome    string `yaml:"marketWelcome"`
	CurrentOffers    string `yaml:"currentOffers"`
	Total            string `yaml:"total"`
	DeleteFilter     string `yaml:"deleteFilter"`
	ListOfAllPlayers string `yaml:"listOfAllPlayers"`
	PlayersTotal     string `yaml:"playersTotal"`
	ShowMyRanking    string `yaml:"showMyRanking"`

	// Navigation labels.
	Back    string `yaml:"back"`
	Forward string `yaml:"forward"`

	// Numeric convention.
	DecimalSeparator rune `yaml:"-"`
	GroupSeparator   rune `yaml:"-"`
}

// Validate returns an error if the config cannot be used for parsing.
func (c *LocaleConfig) Validate() error {
	if !c.Locale.Valid() {
		return Errorf(EINVALID, "locale config: unsupported locale %q", string(c.Locale))
	}
	if c.Currency == "" {
		return Errorf(EINVALID, "locale config %s: currency required", c.Locale)
	}
	if c.ListOfAllPlayers == "" {
		return Errorf(EINVALID, "locale config %s: players list phrase required", c.Locale)
	}
	if c.PlayersTotal == "" {
		return Errorf(EINVALID, "locale config %s: players total phrase required", c.Locale)
	}
	if c.ShowMyRanking == "" {
		return Errorf(EINVALID, "locale config %s: show my ranking phrase required", c.Locale)
	}
	if !isSeparator(c.DecimalSeparator) || !isSeparator(c.GroupSeparator) {
		return Errorf(EINVALID, "locale config %s: decimal and group separators must be '.' or ','", c.Locale)
	}
	if c.DecimalSeparator == c.GroupSeparator {
		return Errorf(EINVALID, "locale config %s: decimal and group separators must differ", c.Locale)
	}
	return nil
}

// The market pattern captures numbers as runs of digits, '.' and ','.
func isSeparator(r rune) bool {
	return r == '.' || r == ','
}

// LocaleCatalog supplies phrase tables and product lists per locale.
type LocaleCatalog interface {
	// LocaleConfig returns the phrase table for a locale.
	// Returns EINVALID for unsupported locales.
	LocaleConfig(locale Locale) (*LocaleConfig, error)

	// Products returns the product catalog for a locale.
	// Returns EINVALID for unsupported locales.
	Products(locale Locale) (*ProductCatalog, error)
}
