package plfhelper_test

import (
	"testing"

	"github.com/fwojciec/plfhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported codes in any case", func(t *testing.T) {
		t.Parallel()

		tests := map[string]plfhelper.Locale{
			"en": plfhelper.LocaleEnglish,
			"DE": plfhelper.LocaleGerman,
			"Nl": plfhelper.LocaleDutch,
		}
		for code, want := range tests {
			got, err := plfhelper.ParseLocale(code)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{"", "e", "eng", "e1", "de-DE"} {
			_, err := plfhelper.ParseLocale(code)
			assert.Equal(t, plfhelper.EINVALID, plfhelper.ErrorCode(err), "code %q", code)
			assert.Contains(t, plfhelper.ErrorMessage(err), "malformed")
		}
	})

	t.Run("rejects unsupported codes", func(t *testing.T) {
		t.Parallel()

		_, err := plfhelper.ParseLocale("fr")

		assert.Equal(t, plfhelper.EINVALID, plfhelper.ErrorCode(err))
		assert.Contains(t, plfhelper.ErrorMessage(err), "unsupported")
	})
}

func TestLocale_Tag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.BritishEnglish, plfhelper.LocaleEnglish.Tag())
	assert.Equal(t, language.German, plfhelper.LocaleGerman.Tag())
	assert.Equal(t, language.Dutch, plfhelper.LocaleDutch.Tag())
	assert.Equal(t, language.Und, plfhelper.LocaleUnknown.Tag())
}

func TestLocale_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "de", plfhelper.LocaleGerman.String())
	assert.Equal(t, "(unknown)", plfhelper.LocaleUnknown.String())
}

func validConfig() plfhelper.LocaleConfig {
	return plfhelper.LocaleConfig{
		Locale:           plfhelper.LocaleEnglish,
		Currency:         "wT",
		ListOfAllPlayers: "List of all players according to score",
		PlayersTotal:     "Players total:",
		ShowMyRanking:    "Show my ranking",
		DecimalSeparator: '.',
		GroupSeparator:   ',',
	}
}

func TestLocaleConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete config", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()

		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*plfhelper.LocaleConfig)
	}{
		{name: "unknown locale", mutate: func(c *plfhelper.LocaleConfig) { c.Locale = plfhelper.LocaleUnknown }},
		{name: "missing currency", mutate: func(c *plfhelper.LocaleConfig) { c.Currency = "" }},
		{name: "missing players list phrase", mutate: func(c *plfhelper.LocaleConfig) { c.ListOfAllPlayers = "" }},
		{name: "missing players total phrase", mutate: func(c *plfhelper.LocaleConfig) { c.PlayersTotal = "" }},
		{name: "missing ranking phrase", mutate: func(c *plfhelper.LocaleConfig) { c.ShowMyRanking = "" }},
		{name: "unsupported separator", mutate: func(c *plfhelper.LocaleConfig) { c.GroupSeparator = ' ' }},
		{name: "equal separators", mutate: func(c *plfhelper.LocaleConfig) { c.GroupSeparator = '.' }},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			assert.Equal(t, plfhelper.EINVALID, plfhelper.ErrorCode(cfg.Validate()))
		})
	}
}
