// tree.go
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

// Package preview projects a storefront document and a navigation state onto
// the visual tree of the simulated phone. Render is pure.
package preview

import "github.com/localnerve/storefront-studio/internal/storefront"

// Tree is the full rendered phone screen.
type Tree struct {
	Screen     storefront.Screen
	Font       string
	Background string
	TextColor  string
	// Accent is the primary color, used for active navigation items.
	Accent     string
	Header     Header
	Content    Content
	NavBar     NavBar
}

type Header struct {
	Variant    storefront.HeaderStyle
	Title      string
	Eyebrow    string
	TitleColor string
	AccentDot  string
	ShowMenu   bool
	ShowSearch bool
	Large      bool
	// CartBadge is hidden when zero.
	CartBadge int
}

// Card is one product tile.
type Card struct {
	Variant     storefront.CardStyle
	ProductID   string
	Name        string
	Price       string
	PriceColor  string
	Image       string
	Radius      string
	Horizontal  bool
	Shadow      bool
	Translucent bool
	// InlineAdd places the add-to-cart button beside the price instead of over the image.
	InlineAdd bool
}

type Section struct {
	Title   string
	Action  string
	Columns int
	Cards   []Card
}

type Banner struct {
	Title    string
	Subtitle string
	Action   string
	Color    string
}

type OfferCard struct {
	ID       string
	Title    string
	Discount string
	Code     string
	Color    string
	Radius   string
}

type CartLine struct {
	ProductID string
	Name      string
	Price     string
	Image     string
	Quantity  int
}

type PaymentRow struct {
	Method storefront.PaymentMethod
	Name   string
	Icon   string
	Color  string
}

type Button struct {
	Label   string
	Enabled bool
}

type Cart struct {
	Line       *CartLine
	EmptyState string
	Payments   []PaymentRow
	Checkout   Button
}

type Order struct {
	ID       string
	Date     string
	Total    string
	Status   string
	ItemName string
	Image    string
	Quantity int
}

type MenuEntry struct {
	Label string
	Icon  string
	// Route is empty for inert entries.
	Route storefront.Screen
}

type Profile struct {
	Name     string
	Subtitle string
	Menu     []MenuEntry
}

// Content holds the screen body. Only the parts used by Tree.Screen are set.
type Content struct {
	Title    string
	Banner   *Banner
	Sections []Section
	Offers   []OfferCard
	Cart     *Cart
	Orders   []Order
	Profile  *Profile
}

type NavItem struct {
	TabID  string
	Label  string
	Icon   string
	Route  storefront.Screen
	Active bool
}

type NavBar struct {
	Variant     storefront.NavBarStyle
	ShowLabels  bool
	Floating    bool
	Translucent bool
	Items       []NavItem
}
