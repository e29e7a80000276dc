// screens.go
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

package preview

import (
	"github.com/localnerve/storefront-studio/internal/navstate"
	"github.com/localnerve/storefront-studio/internal/storefront"
)

// demoOrders is static sample data, independent of the document.
var demoOrders = []Order{
	{ID: "9021", Date: "Today, 11:40 AM", Total: "$345.00", Status: "In Transit", ItemName: "Luxe Watch Pro", Quantity: 1},
	{ID: "8910", Date: "Oct 24, 2025", Total: "$120.50", Status: "Delivered", ItemName: "Luxe Watch Pro", Quantity: 1},
}

var profileMenu = []MenuEntry{
	{Label: string(navstate.ProfileOrderHistory), Icon: "Package", Route: storefront.ScreenOrders},
	{Label: string(navstate.ProfileWallet), Icon: "Wallet"},
	{Label: string(navstate.ProfilePreferences), Icon: "Settings"},
	{Label: string(navstate.ProfileExitSession), Icon: "LogOut"},
}

func homeContent(doc storefront.Document, _ navstate.State) Content {
	c := Content{
		Banner: &Banner{
			Title:    "Winter New Arrival",
			Subtitle: "Explore the full gallery",
			Action:   "Shop Gallery",
			Color:    doc.Theme.Primary,
		},
	}
	if len(doc.Collections) > 0 {
		first := doc.Collections[0]
		products := first.Products
		if len(products) > homeProductLimit {
			products = products[:homeProductLimit]
		}
		c.Sections = []Section{{
			Title:   first.Name,
			Action:  "Explore",
			Columns: Columns(doc.Layout.Card),
			Cards:   cards(doc, products),
		}}
	}
	return c
}

func categoriesContent(doc storefront.Document, _ navstate.State) Content {
	c := Content{Title: "All Items", Sections: make([]Section, 0, len(doc.Collections))}
	for _, coll := range doc.Collections {
		c.Sections = append(c.Sections, Section{
			Title:   coll.Name,
			Columns: Columns(doc.Layout.Card),
			Cards:   cards(doc, coll.Products),
		})
	}
	return c
}

func offersContent(doc storefront.Document, _ navstate.State) Content {
	c := Content{Title: "Promotions", Offers: make([]OfferCard, 0, len(doc.Offers))}
	for _, o := range doc.Offers {
		color := o.Color
		if color == "" {
			color = doc.Theme.Primary
		}
		c.Offers = append(c.Offers, OfferCard{
			ID:       o.ID,
			Title:    o.Title,
			Discount: o.Discount,
			Code:     o.Code,
			Color:    color,
			Radius:   doc.Theme.Radius.CSS(),
		})
	}
	return c
}

// cartContent shows a single synthesized line: the first product of the
// first collection with quantity equal to the cart count.
func cartContent(doc storefront.Document, st navstate.State) Content {
	cart := &Cart{
		Payments: make([]PaymentRow, 0, len(doc.Payment.Methods)),
		Checkout: Button{Label: "Confirm Checkout", Enabled: st.CartCount > 0},
	}
	if p, ok := doc.FirstProduct(); ok && st.CartCount > 0 {
		cart.Line = &CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Quantity: st.CartCount}
	} else {
		cart.EmptyState = "Cart is empty"
	}
	for _, m := range doc.Payment.Methods {
		opt, ok := storefront.PaymentOptionFor(m)
		if !ok {
			continue
		}
		cart.Payments = append(cart.Payments, PaymentRow{Method: m, Name: opt.Name, Icon: opt.Icon, Color: opt.Color})
	}
	return Content{Title: "Your Order", Cart: cart}
}

func ordersContent(doc storefront.Document, _ navstate.State) Content {
	image := ""
	if p, ok := doc.FirstProduct(); ok {
		image = p.Image
	}
	orders := make([]Order, len(demoOrders))
	for i, o := range demoOrders {
		o.Image = image
		orders[i] = o
	}
	return Content{Title: "My Orders", Orders: orders}
}

func profileContent(_ storefront.Document, _ navstate.State) Content {
	return Content{Profile: &Profile{
		Name:     "Account Holder",
		Subtitle: "Verified Merchant",
		Menu:     append([]MenuEntry(nil), profileMenu...),
	}}
}
