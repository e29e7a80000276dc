// enums.go
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

// Radius is the corner rounding applied to cards and banners.
type Radius string

const (
	RadiusNone   Radius = "NONE"
	RadiusSmall  Radius = "SMALL"
	RadiusMedium Radius = "MEDIUM"
	RadiusLarge  Radius = "LARGE"
	RadiusFull   Radius = "FULL"
)

var radiusCSS = map[Radius]string{
	RadiusNone:   "0px",
	RadiusSmall:  "0.5rem",
	RadiusMedium: "1rem",
	RadiusLarge:  "1.5rem",
	RadiusFull:   "9999px",
}

// Radii lists the selectable radius values in editor order.
var Radii = []Radius{RadiusNone, RadiusSmall, RadiusMedium, RadiusLarge, RadiusFull}

func (r Radius) Valid() bool {
	_, ok := radiusCSS[r]
	return ok
}

// CSS returns the length used when painting, falling back to MEDIUM.
func (r Radius) CSS() string {
	if css, ok := radiusCSS[r]; ok {
		return css
	}
	return radiusCSS[RadiusMedium]
}

// ParseRadius accepts either the enum name or its CSS length.
func ParseRadius(s string) (Radius, bool) {
	s = strings.TrimSpace(s)
	if r := Radius(strings.ToUpper(s)); r.Valid() {
		return r, true
	}
	for r, css := range radiusCSS {
		if css == s {
			return r, true
		}
	}
	return "", false
}

// Font is the typeface family used by the preview.
type Font string

const (
	FontTajawal Font = "TAJAWAL"
	FontInter   Font = "INTER"
	FontMono    Font = "MONO"
)

var fontCSS = map[Font]string{
	FontTajawal: "'Tajawal', sans-serif",
	FontInter:   "'Inter', sans-serif",
	FontMono:    "'Space Mono', monospace",
}

// Fonts lists the selectable fonts in editor order.
var Fonts = []Font{FontTajawal, FontInter, FontMono}

func (f Font) Valid() bool {
	_, ok := fontCSS[f]
	return ok
}

// CSS returns the font-family stack, falling back to INTER.
func (f Font) CSS() string {
	if css, ok := fontCSS[f]; ok {
		return css
	}
	return fontCSS[FontInter]
}

// ParseFont accepts either the enum name or its font-family stack.
func ParseFont(s string) (Font, bool) {
	s = strings.TrimSpace(s)
	if f := Font(strings.ToUpper(s)); f.Valid() {
		return f, true
	}
	for f, css := range fontCSS {
		if css == s {
			return f, true
		}
	}
	return "", false
}

// CardStyle selects the product card variant.
type CardStyle string

const (
	CardGrid    CardStyle = "GRID"
	CardList    CardStyle = "LIST"
	CardElegant CardStyle = "ELEGANT"
	CardGlass   CardStyle = "GLASS"
)

// CardStyles lists every card variant.
var CardStyles = []CardStyle{CardGrid, CardList, CardElegant, CardGlass}

func (c CardStyle) Valid() bool { return containsEnum(CardStyles, c) }

// NavBarStyle selects the bottom navigation bar variant.
type NavBarStyle string

const (
	NavClassic  NavBarStyle = "CLASSIC"
	NavFloating NavBarStyle = "FLOATING"
	NavGlass    NavBarStyle = "GLASS"
	NavMinimal  NavBarStyle = "MINIMAL"
)

// NavBarStyles lists every navigation bar variant.
var NavBarStyles = []NavBarStyle{NavClassic, NavFloating, NavGlass, NavMinimal}

func (n NavBarStyle) Valid() bool { return containsEnum(NavBarStyles, n) }

// HeaderStyle selects the header variant.
type HeaderStyle string

const (
	HeaderClassic HeaderStyle = "CLASSIC"
	HeaderModern  HeaderStyle = "MODERN"
	HeaderMinimal HeaderStyle = "MINIMAL"
	HeaderBold    HeaderStyle = "BOLD"
)

// HeaderStyles lists every header variant.
var HeaderStyles = []HeaderStyle{HeaderClassic, HeaderModern, HeaderMinimal, HeaderBold}

func (h HeaderStyle) Valid() bool { return containsEnum(HeaderStyles, h) }

// PaymentMethod is a checkout gateway offered by the app.
type PaymentMethod string

const (
	PaymentStripe PaymentMethod = "STRIPE"
	PaymentPayPal PaymentMethod = "PAYPAL"
	PaymentCash   PaymentMethod = "CASH"
)

// PaymentMethods lists every gateway in editor order.
var PaymentMethods = []PaymentMethod{PaymentStripe, PaymentPayPal, PaymentCash}

func (p PaymentMethod) Valid() bool { return containsEnum(PaymentMethods, p) }

func containsEnum[T ~string](values []T, v T) bool {
	for _, known := range values {
		if known == v {
			return true
		}
	}
	return false
}
