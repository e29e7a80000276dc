// catalog.go
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

import "strings"

// TabCatalog is the closed set of tabs a storefront can enable. Tab ids are stable.
var TabCatalog = []Tab{
	{ID: "t_home", Label: "Home", Icon: "Home", Route: ScreenHome},
	{ID: "t_store", Label: "Store", Icon: "Store", Route: ScreenCategories},
	{ID: "t_offers", Label: "Offers", Icon: "Tag", Route: ScreenOffers},
	{ID: "t_cart", Label: "Cart", Icon: "ShoppingCart", Route: ScreenCart},
	{ID: "t_orders", Label: "My Orders", Icon: "Package", Route: ScreenOrders},
}

// TabByID looks up a catalog tab.
func TabByID(id string) (Tab, bool) {
	for _, t := range TabCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// FallbackIcon is shown for icon names missing from the registry.
const FallbackIcon = "HelpCircle"

// iconGlyphs maps registered icon names to the glyph painted in terminals.
var iconGlyphs = map[string]string{
	"Home":         "⌂",
	"Store":        "▦",
	"Tag":          "%",
	"ShoppingCart": "🛒",
	"ShoppingBag":  "◍",
	"Package":      "▣",
	"User":         "☺",
	"Wallet":       "$",
	"Settings":     "⚙",
	"LogOut":       "⇥",
	"Menu":         "≡",
	"Search":       "⌕",
	"Sparkles":     "✦",
	"CreditCard":   "▭",
	"Landmark":     "⌂",
	"Banknote":     "¤",
	FallbackIcon:   "?",
}

// ResolveIcon returns name when it is registered and FallbackIcon otherwise.
func ResolveIcon(name string) string {
	if _, ok := iconGlyphs[name]; ok {
		return name
	}
	return FallbackIcon
}

// IconGlyph returns the terminal glyph for an icon name.
func IconGlyph(name string) string {
	return iconGlyphs[ResolveIcon(name)]
}

// Palette is a named primary/secondary/background triple selectable as a unit.
type Palette struct {
	Name      string
	Primary   string
	Secondary string
	Container string
}

// Palettes is the fixed palette set offered by the style selector.
var Palettes = []Palette{
	{Name: "Indigo Dream", Primary: "#4f46e5", Secondary: "#818cf8", Container: "#f8faff"},
	{Name: "Forest Green", Primary: "#065f46", Secondary: "#10b981", Container: "#f0fdfa"},
	{Name: "Sunset Orange", Primary: "#c2410c", Secondary: "#f97316", Container: "#fffaf5"},
	{Name: "Midnight Gold", Primary: "#171717", Secondary: "#fbbf24", Container: "#fafafa"},
	{Name: "Soft Lavender", Primary: "#7c3aed", Secondary: "#c084fc", Container: "#fdfaff"},
	{Name: "Ocean Blue", Primary: "#0369a1", Secondary: "#38bdf8", Container: "#f0f9ff"},
	{Name: "Teal Breeze", Primary: "#0d9488", Secondary: "#2dd4bf", Container: "#f0fdfa"},
	{Name: "Rose Quartz", Primary: "#e11d48", Secondary: "#fb7185", Container: "#fff1f2"},
	{Name: "Slate Dark", Primary: "#334155", Secondary: "#64748b", Container: "#f8fafc"},
	{Name: "Amber Glow", Primary: "#d97706", Secondary: "#fbbf24", Container: "#fffbeb"},
	{Name: "Royal Purple", Primary: "#6d28d9", Secondary: "#a78bfa", Container: "#f5f3ff"},
	{Name: "Crimson Red", Primary: "#991b1b", Secondary: "#ef4444", Container: "#fef2f2"},
	{Name: "Mint Fresh", Primary: "#059669", Secondary: "#34d399", Container: "#ecfdf5"},
	{Name: "Sky Bright", Primary: "#0284c7", Secondary: "#7dd3fc", Container: "#f0f9ff"},
	{Name: "Fuchsia Pop", Primary: "#c026d3", Secondary: "#e879f9", Container: "#fdf4ff"},
}

// PaletteByPrimary finds the palette whose primary color matches, ignoring case.
func PaletteByPrimary(color string) (Palette, bool) {
	for _, p := range Palettes {
		if strings.EqualFold(p.Primary, color) {
			return p, true
		}
	}
	return Palette{}, false
}

// PaletteByName finds a palette by its display name.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// PaymentOption describes how a payment method is presented.
type PaymentOption struct {
	Method PaymentMethod
	Name   string
	Icon   string
	Color  string
}

// PaymentOptions is indexed in PaymentMethods order.
var PaymentOptions = []PaymentOption{
	{Method: PaymentStripe, Name: "Stripe", Icon: "CreditCard", Color: "#635BFF"},
	{Method: PaymentPayPal, Name: "PayPal", Icon: "Landmark", Color: "#003087"},
	{Method: PaymentCash, Name: "Cash", Icon: "Banknote", Color: "#22C55E"},
}

// PaymentOptionFor returns the presentation of m.
func PaymentOptionFor(m PaymentMethod) (PaymentOption, bool) {
	for _, o := range PaymentOptions {
		if o.Method == m {
			return o, true
		}
	}
	return PaymentOption{}, false
}

// Option is a labelled editor choice.
type Option[T ~string] struct {
	Value T
	Name  string
}

var (
	CardOptions = []Option[CardStyle]{
		{CardGrid, "Classic Grid"}, {CardList, "Modern List"}, {CardElegant, "Elegant Pro"}, {CardGlass, "Glassmorphism"},
	}
	NavBarOptions = []Option[NavBarStyle]{
		{NavClassic, "Classic Solid"}, {NavFloating, "Modern Floating"}, {NavGlass, "Glass Blur"}, {NavMinimal, "Minimalist"},
	}
	HeaderOptions = []Option[HeaderStyle]{
		{HeaderClassic, "Solid Header"}, {HeaderModern, "Modern Round"}, {HeaderMinimal, "Minimal Flat"}, {HeaderBold, "Bold Large"},
	}
	RadiusOptions = []Option[Radius]{
		{RadiusNone, "Sharp"}, {RadiusSmall, "Soft"}, {RadiusMedium, "Smooth"}, {RadiusLarge, "Extra"}, {RadiusFull, "Pill"},
	}
	FontOptions = []Option[Font]{
		{FontTajawal, "Tajawal (Modern Ar/En)"}, {FontInter, "Inter (Clean Sans)"}, {FontMono, "Space Mono (Tech)"},
	}
)
