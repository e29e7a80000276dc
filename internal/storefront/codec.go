// codec.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package storefront

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/localnerve/storefront-studio/internal/types"
)

// Marshal encodes the document in its compact wire form.
func Marshal(doc Document) ([]byte, error) {
	return json.Marshal(doc.Clone())
}

// MarshalIndent encodes the document in the pretty form used for export artifacts.
func MarshalIndent(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc.Clone(), "", "  ")
}

// Unmarshal decodes a stored document. It never fails: every field that is
// missing, mistyped or outside its enumeration takes its default value, and
// the names of those fields are returned so callers can log a warning.
// userID is used when the payload does not carry one.
func Unmarshal(data []byte, userID string) (Document, []string) {
	def := NewDefault(userID)

	var top map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &top); err != nil || len(top) == 0 {
		return def, []string{"document"}
	}

	d := &decoder{top: top}
	doc := def

	if uid, ok := d.str("userId"); ok && uid != "" {
		doc.UserID = uid
	} else {
		d.degrade("userId")
	}
	if id, ok := d.str("id"); ok && id != "" {
		doc.ID = id
	} else {
		doc.ID = AppID(doc.UserID)
		d.degrade("id")
	}
	if name, ok := d.str("name"); ok {
		doc.Name = name
	} else {
		d.degrade("name")
	}
	if icon, ok := d.str("icon"); ok {
		doc.Icon = icon
	} else {
		d.degrade("icon")
	}
	if endpoint, ok := d.str("apiEndpoint"); ok {
		doc.APIEndpoint = endpoint
	} else {
		d.degrade("apiEndpoint")
	}

	doc.Theme = d.theme(def.Theme)
	doc.Layout = d.layout(def.Layout)
	doc.Payment.Methods = d.methods(def.Payment.Methods)
	doc.Navigation = d.navigation(def.Navigation)
	doc.Collections = d.collections(def.Collections)
	doc.Offers = d.offers(def.Offers)

	return doc, d.degraded
}

type decoder struct {
	top      map[string]json.RawMessage
	degraded []string
}

func (d *decoder) degrade(field string) {
	d.degraded = append(d.degraded, field)
}

func (d *decoder) str(key string) (string, bool) {
	return rawString(d.top[key])
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func (d *decoder) object(key string) (map[string]json.RawMessage, bool) {
	raw, ok := d.top[key]
	if !ok {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func (d *decoder) theme(def Theme) Theme {
	obj, ok := d.object("theme")
	if !ok {
		d.degrade("theme")
		return def
	}
	t := def
	colors := []struct {
		key string
		dst *string
	}{
		{"primary", &t.Primary},
		{"secondary", &t.Secondary},
		{"background", &t.Background},
		{"text", &t.Text},
	}
	for _, c := range colors {
		if v, ok := rawString(obj[c.key]); ok && strings.TrimSpace(v) != "" {
			*c.dst = v
		} else {
			d.degrade("theme." + c.key)
		}
	}
	if v, ok := rawString(obj["radius"]); ok {
		if r, ok := ParseRadius(v); ok {
			t.Radius = r
		} else {
			d.degrade("theme.radius")
		}
	} else {
		d.degrade("theme.radius")
	}
	if v, ok := rawString(obj["font"]); ok {
		if f, ok := ParseFont(v); ok {
			t.Font = f
		} else {
			d.degrade("theme.font")
		}
	} else {
		d.degrade("theme.font")
	}
	return t
}

func (d *decoder) layout(def Layout) Layout {
	obj, ok := d.object("layout")
	if !ok {
		d.degrade("layout")
		return def
	}
	l := def
	if v, ok := rawString(obj["card"]); ok && CardStyle(v).Valid() {
		l.Card = CardStyle(v)
	} else {
		d.degrade("layout.card")
	}
	if v, ok := rawString(obj["navigation"]); ok && NavBarStyle(v).Valid() {
		l.Navigation = NavBarStyle(v)
	} else {
		d.degrade("layout.navigation")
	}
	if v, ok := rawString(obj["header"]); ok && HeaderStyle(v).Valid() {
		l.Header = HeaderStyle(v)
	} else {
		d.degrade("layout.header")
	}
	return l
}

func (d *decoder) methods(def []PaymentMethod) []PaymentMethod {
	obj, ok := d.object("payment")
	if !ok {
		d.degrade("payment")
		return def
	}
	names, dropped, err := types.DecodeFlexList[string](obj["methods"])
	if err != nil {
		d.degrade("payment.methods")
		return def
	}
	seen := make(map[PaymentMethod]struct{}, len(names))
	out := make([]PaymentMethod, 0, len(names))
	for _, n := range names {
		m := PaymentMethod(n)
		if _, dup := seen[m]; dup || !m.Valid() {
			dropped++
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	if len(out) < MinPaymentMethods {
		d.degrade("payment.methods")
		return def
	}
	if dropped > 0 {
		d.degrade("payment.methods[]")
	}
	return out
}

func (d *decoder) navigation(def []Tab) []Tab {
	tabs, dropped, err := types.DecodeFlexList[Tab](d.top["navigation"])
	if err != nil || tabs == nil {
		d.degrade("navigation")
		return def
	}
	seen := make(map[string]struct{}, len(tabs))
	out := make([]Tab, 0, len(tabs))
	for _, t := range tabs {
		known, ok := TabByID(t.ID)
		if _, dup := seen[t.ID]; dup || !ok {
			dropped++
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, known)
	}
	if len(out) < MinTabs {
		d.degrade("navigation")
		return def
	}
	if dropped > 0 {
		d.degrade("navigation[]")
	}
	return out
}

type wireProduct struct {
	ID          types.FlexString `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       json.RawMessage  `json:"price"`
	Image       string           `json:"image"`
}

type wireCollection struct {
	ID       types.FlexString `json:"id"`
	Name     string           `json:"name"`
	Products json.RawMessage  `json:"products"`
}

func (d *decoder) collections(def []Collection) []Collection {
	raw, ok := d.top["collections"]
	if !ok {
		d.degrade("collections")
		return def
	}
	wires, dropped, err := types.DecodeFlexList[wireCollection](raw)
	if err != nil {
		d.degrade("collections")
		return def
	}
	out := make([]Collection, 0, len(wires))
	for _, w := range wires {
		c := Collection{ID: w.ID.String(), Name: w.Name, Products: []Product{}}
		products, droppedProducts, err := types.DecodeFlexList[wireProduct](w.Products)
		if err != nil {
			droppedProducts++
		}
		dropped += droppedProducts
		for _, p := range products {
			c.Products = append(c.Products, Product{
				ID:          p.ID.String(),
				Name:        p.Name,
				Description: p.Description,
				Price:       storedPrice(p.Price),
				Image:       p.Image,
			})
		}
		out = append(out, c)
	}
	if dropped > 0 {
		d.degrade("collections[]")
	}
	return out
}

// storedPrice keeps a string price exactly as stored. Numeric prices, which
// some backends emit, are formatted with the currency prefix.
func storedPrice(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return NormalizePrice(n.String())
	}
	return ""
}

func (d *decoder) offers(def []Offer) []Offer {
	raw, ok := d.top["offers"]
	if !ok {
		d.degrade("offers")
		return def
	}
	offers, dropped, err := types.DecodeFlexList[Offer](raw)
	if err != nil {
		d.degrade("offers")
		return def
	}
	if offers == nil {
		offers = []Offer{}
	}
	if dropped > 0 {
		d.degrade("offers[]")
	}
	return offers
}
