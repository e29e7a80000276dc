// defaults.go
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

const (
	DefaultName        = "Premium Store"
	DefaultIcon        = "🛍️"
	DefaultAPIEndpoint = "https://api.linkora.io/v1"
	DefaultTextColor   = "#1e293b"
)

// DefaultPalette is applied to new documents.
var DefaultPalette = Palettes[0]

// NewDefault builds the starter document for a user who has nothing saved yet.
func NewDefault(userID string) Document {
	return Document{
		ID:          AppID(userID),
		UserID:      userID,
		Name:        DefaultName,
		Icon:        DefaultIcon,
		APIEndpoint: DefaultAPIEndpoint,
		Theme:       defaultTheme(),
		Layout:      defaultLayout(),
		Payment:     Payment{Methods: defaultMethods()},
		Navigation:  defaultNavigation(),
		Collections: defaultCollections(),
		Offers:      defaultOffers(),
	}
}

func defaultTheme() Theme {
	return Theme{
		Primary:    DefaultPalette.Primary,
		Secondary:  DefaultPalette.Secondary,
		Background: DefaultPalette.Container,
		Text:       DefaultTextColor,
		Radius:     RadiusMedium,
		Font:       FontInter,
	}
}

func defaultLayout() Layout {
	return Layout{Card: CardGrid, Navigation: NavClassic, Header: HeaderClassic}
}

func defaultMethods() []PaymentMethod {
	return []PaymentMethod{PaymentStripe, PaymentCash}
}

func defaultNavigation() []Tab {
	return append([]Tab(nil), TabCatalog[:4]...)
}

func defaultCollections() []Collection {
	return []Collection{{
		ID:   "c1",
		Name: "Featured",
		Products: []Product{{
			ID:          "p1",
			Name:        "Luxe Watch",
			Description: "Premium design.",
			Price:       "$299",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=300",
		}},
	}}
}

func defaultOffers() []Offer {
	return []Offer{{
		ID:          "o1",
		Title:       "Grand Opening",
		Discount:    "20% OFF",
		Code:        "HELLO20",
		Description: "Limited time deal.",
		Color:       DefaultPalette.Primary,
	}}
}
