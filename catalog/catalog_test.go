package catalog_test

import (
	"testing"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_LocaleConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns a valid config for every supported locale", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()
		for _, locale := range plfhelper.Locales() {
			cfg, err := c.LocaleConfig(locale)
			require.NoError(t, err)
			assert.Equal(t, locale, cfg.Locale)
			assert.NoError(t, cfg.Validate(), "locale %s", locale)
		}
	})

	t.Run("returns EINVALID for unknown locale", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.New().LocaleConfig(plfhelper.LocaleUnknown)

		assert.Equal(t, plfhelper.EINVALID, plfhelper.ErrorCode(err))
	})

	t.Run("returns a copy callers can modify", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()
		cfg, err := c.LocaleConfig(plfhelper.LocaleEnglish)
		require.NoError(t, err)
		cfg.Currency = "changed"

		again, err := c.LocaleConfig(plfhelper.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, "wT", again.Currency)
	})

	t.Run("uses locale phrases", func(t *testing.T) {
		t.Parallel()

		cfg, err := catalog.New().LocaleConfig(plfhelper.LocaleGerman)
		require.NoError(t, err)

		assert.Equal(t, "Spieler gesamt:", cfg.PlayersTotal)
		assert.Equal(t, "wo bin ich?", cfg.ShowMyRanking)
		assert.Equal(t, "Liste aller Spieler nach Punktzahl", cfg.ListOfAllPlayers)
	})
}

func TestCatalog_Products(t *testing.T) {
	t.Parallel()

	t.Run("includes multi-word names", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()

		en, err := c.Products(plfhelper.LocaleEnglish)
		require.NoError(t, err)
		assert.Contains(t, en.MultiWord(), "Red cabbage")
		assert.Contains(t, en.MultiWord(), "Angel's trumpet")

		nl, err := c.Products(plfhelper.LocaleDutch)
		require.NoError(t, err)
		assert.Contains(t, nl.MultiWord(), "Koe lelie")
	})

	t.Run("returns EINVALID for unknown locale", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.New().Products(plfhelper.Locale("fr"))

		assert.Equal(t, plfhelper.EINVALID, plfhelper.ErrorCode(err))
	})
}

func TestSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale  plfhelper.Locale
		decimal rune
		group   rune
	}{
		{plfhelper.LocaleEnglish, '.', ','},
		{plfhelper.LocaleGerman, ',', '.'},
		{plfhelper.LocaleDutch, ',', '.'},
	}

	for _, tt := range tests {
		t.Run(tt.locale.String(), func(t *testing.T) {
			t.Parallel()

			decimal, group := catalog.Separators(tt.locale)

			assert.Equal(t, string(tt.decimal), string(decimal))
			assert.Equal(t, string(tt.group), string(group))
		})
	}
}
