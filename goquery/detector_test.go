package goquery_test

import (
	"testing"

	"github.com/fwojciec/plfhelper"
	"github.com/fwojciec/plfhelper/catalog"
	"github.com/fwojciec/plfhelper/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want plfhelper.Locale
	}{
		{
			name: "reads the html lang attribute",
			html: `<html lang="de-DE"><body>Welcome to the market place!</body></html>`,
			want: plfhelper.LocaleGerman,
		},
		{
			name: "reads the content-language meta tag",
			html: `<html><head><meta http-equiv="Content-Language" content="nl"></head><body></body></html>`,
			want: plfhelper.LocaleDutch,
		},
		{
			name: "ignores unsupported declarations and falls back to phrases",
			html: `<html lang="fr"><body><p>Liste aller Spieler nach Punktzahl</p><p>Spieler gesamt: 12</p></body></html>`,
			want: plfhelper.LocaleGerman,
		},
		{
			name: "picks the locale with the most matching headers",
			html: `<body><h1>Welcome to the market place!</h1><h2>Current offers</h2><p>Totaal</p></body>`,
			want: plfhelper.LocaleEnglish,
		},
		{
			name: "returns unknown when nothing matches",
			html: `<body><p>Hello</p></body>`,
			want: plfhelper.LocaleUnknown,
		},
	}

	d := goquery.NewDetector(catalog.New())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, d.Detect(tt.html))
		})
	}
}
