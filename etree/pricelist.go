// Package etree reads and writes value vectors as <pricelist> XML
// documents, so a session's state can be shared or resumed.
package etree

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/plfhelper"
)

// PriceList is a value vector together with what is needed to read it.
type PriceList struct {
	Locale     plfhelper.Locale
	Catalog    *plfhelper.ProductCatalog
	Layout     plfhelper.Layout
	Values     []float64
	ObservedAt time.Time
}

// Encode writes the price list as an indented XML document. Unset (NaN)
// slots are written as empty elements.
func Encode(w io.Writer, pl *PriceList) error {
	if pl.Catalog == nil {
		return plfhelper.Errorf(plfhelper.EINVALID, "price list catalog required")
	}
	if len(pl.Values) < pl.Layout.Size() {
		return plfhelper.Errorf(plfhelper.EINVALID, "value vector has %d slots, layout needs %d", len(pl.Values), pl.Layout.Size())
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("pricelist")
	root.CreateAttr("locale", string(pl.Locale))
	if !pl.ObservedAt.IsZero() {
		root.CreateAttr("observed", pl.ObservedAt.UTC().Format(time.RFC3339))
	}

	for i := 0; i < pl.Catalog.Len() && i < pl.Layout.Products; i++ {
		el := root.CreateElement("product")
		el.CreateAttr("index", strconv.Itoa(i))
		el.CreateAttr("name", pl.Catalog.Name(i))
		setValue(el, pl.Values[i])
	}

	players := root.CreateElement("players")
	players.CreateAttr("index", strconv.Itoa(pl.Layout.PlayersIndex))
	setValue(players, pl.Values[pl.Layout.PlayersIndex])

	players1 := root.CreateElement("players1")
	players1.CreateAttr("index", strconv.Itoa(pl.Layout.Players1Index))
	setValue(players1, pl.Values[pl.Layout.Players1Index])

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing price list: %w", err)
	}
	return nil
}

func setValue(el *etree.Element, v float64) {
	if math.IsNaN(v) {
		return
	}
	el.SetText(strconv.FormatFloat(v, 'f', -1, 64))
}

// Decode reads a price list written by Encode into a vector sized for
// layout. Slots the document leaves empty are NaN. Product names must
// match catalog at their index.
//
// Returns EMALFORMED for documents that are not price lists and EINVALID
// when the document does not fit the catalog or layout.
func Decode(r io.Reader, catalog *plfhelper.ProductCatalog, layout plfhelper.Layout) (*PriceList, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, plfhelper.Errorf(plfhelper.EMALFORMED, "parsing price list XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "pricelist" {
		return nil, plfhelper.Errorf(plfhelper.EMALFORMED, "missing <pricelist> root element")
	}

	pl := &PriceList{
		Locale:  plfhelper.Locale(root.SelectAttrValue("locale", "")),
		Catalog: catalog,
		Layout:  layout,
		Values:  layout.NewVector(),
	}
	for i := range pl.Values {
		pl.Values[i] = math.NaN()
	}

	if observed := root.SelectAttrValue("observed", ""); observed != "" {
		t, err := time.Parse(time.RFC3339, observed)
		if err != nil {
			return nil, plfhelper.Errorf(plfhelper.EMALFORMED, "invalid observed timestamp %q", observed)
		}
		pl.ObservedAt = t
	}

	for _, el := range root.SelectElements("product") {
		index, err := readIndex(el, layout.Products)
		if err != nil {
			return nil, err
		}
		if index >= catalog.Len() {
			return nil, plfhelper.Errorf(plfhelper.EINVALID, "product index %d outside catalog of %d products", index, catalog.Len())
		}
		if name := el.SelectAttrValue("name", ""); name != catalog.Name(index) {
			return nil, plfhelper.Errorf(plfhelper.EINVALID, "product %d is %q in the price list but %q in the catalog", index, name, catalog.Name(index))
		}
		if err := readValue(el, pl.Values, index); err != nil {
			return nil, err
		}
	}

	for tag, index := range map[string]int{"players": layout.PlayersIndex, "players1": layout.Players1Index} {
		el := root.SelectElement(tag)
		if el == nil {
			continue
		}
		if err := readValue(el, pl.Values, index); err != nil {
			return nil, err
		}
	}

	return pl, nil
}

func readIndex(el *etree.Element, limit int) (int, error) {
	raw := el.SelectAttrValue("index", "")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, plfhelper.Errorf(plfhelper.EMALFORMED, "<%s> has invalid index %q", el.Tag, raw)
	}
	if index < 0 || index >= limit {
		return 0, plfhelper.Errorf(plfhelper.EINVALID, "<%s> index %d outside layout", el.Tag, index)
	}
	return index, nil
}

func readValue(el *etree.Element, values []float64, index int) error {
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return plfhelper.Errorf(plfhelper.EMALFORMED, "<%s> has invalid value %q", el.Tag, text)
	}
	values[index] = v
	return nil
}
