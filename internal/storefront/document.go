// document.go
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

// Package storefront holds the configuration document that describes one user's
// storefront app, the closed catalogs it draws from, and its wire codec.
package storefront

import (
	"strings"
	"unicode/utf8"
)

// Screen names one of the fixed preview screens a tab can route to.
type Screen string

const (
	ScreenHome       Screen = "HOME"
	ScreenCategories Screen = "CATEGORIES"
	ScreenOffers     Screen = "OFFERS"
	ScreenCart       Screen = "CART"
	ScreenOrders     Screen = "ORDERS"
	ScreenProfile    Screen = "PROFILE"
)

// Screens lists every screen in dispatch order.
var Screens = []Screen{ScreenHome, ScreenCategories, ScreenOffers, ScreenCart, ScreenOrders, ScreenProfile}

// Valid reports whether s is one of the six known screens.
func (s Screen) Valid() bool {
	for _, known := range Screens {
		if s == known {
			return true
		}
	}
	return false
}

// Theme is the visual identity of the app.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Radius     Radius `json:"radius"`
	Font       Font   `json:"font"`
}

// Layout holds the variant choice for each rendered region.
type Layout struct {
	Card       CardStyle   `json:"card"`
	Navigation NavBarStyle `json:"navigation"`
	Header     HeaderStyle `json:"header"`
}

// Payment lists the enabled checkout methods.
type Payment struct {
	Methods []PaymentMethod `json:"methods"`
}

// Tab is a navigation entry shown in the preview's bottom bar.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Route Screen `json:"route"`
}

// Product is a catalog item. Price is already normalized, e.g. "$299".
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// Collection groups products. Removing a collection removes its products.
type Collection struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// Offer is a marketing campaign card.
type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Discount    string `json:"discount"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Document is the root configuration aggregate persisted and exported for a user.
type Document struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	APIEndpoint string       `json:"apiEndpoint"`
	Theme       Theme        `json:"theme"`
	Layout      Layout       `json:"layout"`
	Payment     Payment      `json:"payment"`
	Navigation  []Tab        `json:"navigation"`
	Collections []Collection `json:"collections"`
	Offers      []Offer      `json:"offers"`
}

const (
	// MinTabs is the smallest number of enabled navigation tabs.
	MinTabs = 2
	// MinPaymentMethods is the smallest number of enabled payment methods.
	MinPaymentMethods = 1
)

// AppID derives the document id from the owning user's id.
func AppID(userID string) string {
	prefix := userID
	if utf8.RuneCountInString(prefix) > 4 {
		prefix = string([]rune(prefix)[:4])
	}
	return "LK_" + strings.ToUpper(prefix)
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (d Document) Clone() Document {
	out := d
	out.Payment.Methods = append([]PaymentMethod(nil), d.Payment.Methods...)
	out.Navigation = append([]Tab(nil), d.Navigation...)
	out.Offers = append([]Offer(nil), d.Offers...)
	out.Collections = nil
	if d.Collections != nil {
		out.Collections = make([]Collection, len(d.Collections))
		for i, c := range d.Collections {
			c.Products = append([]Product(nil), c.Products...)
			out.Collections[i] = c
		}
	}
	if out.Payment.Methods == nil {
		out.Payment.Methods = []PaymentMethod{}
	}
	if out.Navigation == nil {
		out.Navigation = []Tab{}
	}
	if out.Offers == nil {
		out.Offers = []Offer{}
	}
	if out.Collections == nil {
		out.Collections = []Collection{}
	}
	return out
}

// SKUCount is the total number of products across all collections.
func (d Document) SKUCount() int {
	total := 0
	for _, c := range d.Collections {
		total += len(c.Products)
	}
	return total
}

// HasTab reports whether a tab routing to screen is enabled.
func (d Document) HasTab(route Screen) bool {
	for _, t := range d.Navigation {
		if t.Route == route {
			return true
		}
	}
	return false
}

// FirstProduct returns the first product of the first collection, if any.
func (d Document) FirstProduct() (Product, bool) {
	if len(d.Collections) == 0 || len(d.Collections[0].Products) == 0 {
		return Product{}, false
	}
	return d.Collections[0].Products[0], true
}

// CollectionIndex finds a collection by id, returning -1 when absent.
func (d Document) CollectionIndex(id string) int {
	for i, c := range d.Collections {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the invariants every mutation must preserve.
func (d Document) Validate() error {
	if len(d.Payment.Methods) < MinPaymentMethods {
		return &ValidationError{Field: "payment.methods", Reason: "at least one payment method must be enabled"}
	}
	seenMethods := make(map[PaymentMethod]struct{}, len(d.Payment.Methods))
	for _, m := range d.Payment.Methods {
		if !m.Valid() {
			return &ValidationError{Field: "payment.methods", Reason: "unknown payment method " + string(m)}
		}
		if _, dup := seenMethods[m]; dup {
			return &ValidationError{Field: "payment.methods", Reason: "duplicate payment method " + string(m)}
		}
		seenMethods[m] = struct{}{}
	}
	if len(d.Navigation) < MinTabs {
		return &ValidationError{Field: "navigation", Reason: "at least two tabs must be enabled"}
	}
	seenTabs := make(map[string]struct{}, len(d.Navigation))
	for _, t := range d.Navigation {
		if _, ok := TabByID(t.ID); !ok {
			return &ValidationError{Field: "navigation", Reason: "unknown tab " + t.ID}
		}
		if _, dup := seenTabs[t.ID]; dup {
			return &ValidationError{Field: "navigation", Reason: "duplicate tab " + t.ID}
		}
		seenTabs[t.ID] = struct{}{}
	}
	return nil
}
