// Package goquery turns saved game pages into the plain text a player
// would copy out of the browser.
package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/plfhelper"
)

var _ plfhelper.TextExtractor = (*TextExtractor)(nil)

// blockElements start and end a line.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "caption": true, "center": true, "dd": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "html": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "tbody": true, "tfoot": true,
	"thead": true, "tr": true, "ul": true,
}

// skippedElements never contribute visible text.
var skippedElements = map[string]bool{
	"head": true, "iframe": true, "noscript": true, "script": true,
	"select": true, "style": true, "svg": true, "template": true,
	"title": true,
}

// TextExtractor renders HTML as newline-separated text. Table rows become
// lines with their cells separated by tabs, matching what a browser puts
// on the clipboard.
type TextExtractor struct {
	root string
}

// NewTextExtractor creates an extractor that renders the first element
// matching the root selector. An empty root renders the whole body.
func NewTextExtractor(root string) *TextExtractor {
	if root == "" {
		root = "body"
	}
	return &TextExtractor{root: root}
}

// ExtractText returns the visible text of html.
// Returns ENOTFOUND if nothing matches the root selector.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", plfhelper.Errorf(plfhelper.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Find(e.root).First()
	if root.Length() == 0 {
		return "", plfhelper.Errorf(plfhelper.ENOTFOUND, "no element matches %q", e.root)
	}

	var w lineWriter
	walk(root, &w)
	w.newline()
	return strings.Join(w.lines, "\n"), nil
}

func walk(sel *goquery.Selection, w *lineWriter) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch {
		case name == "#text":
			w.text(s.Text())
		case name == "br":
			w.newline()
		case name == "td" || name == "th":
			w.cell()
			walk(s, w)
		case blockElements[name]:
			w.newline()
			walk(s, w)
			w.newline()
		case skippedElements[name], strings.HasPrefix(name, "#"):
			// comments, doctype
		default:
			walk(s, w)
		}
	})
}

// lineWriter collapses whitespace the way a browser renders it.
type lineWriter struct {
	lines []string
	cur   strings.Builder
	sep   string
}

func (w *lineWriter) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.space()
		}
		return
	}

	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		w.space()
	}
	for i, f := range fields {
		if i > 0 {
			w.space()
		}
		w.word(f)
	}
	if r, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(r) {
		w.space()
	}
}

func (w *lineWriter) word(f string) {
	if w.cur.Len() > 0 {
		w.cur.WriteString(w.sep)
	}
	w.sep = ""
	w.cur.WriteString(f)
}

func (w *lineWriter) space() {
	if w.cur.Len() > 0 && w.sep == "" {
		w.sep = " "
	}
}

func (w *lineWriter) cell() {
	if w.cur.Len() > 0 {
		w.sep = "\t"
	}
}

func (w *lineWriter) newline() {
	if w.cur.Len() > 0 {
		w.lines = append(w.lines, w.cur.String())
		w.cur.Reset()
	}
	w.sep = ""
}
