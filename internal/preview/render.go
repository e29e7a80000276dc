// render.go
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

const homeProductLimit = 4

type (
	headerFunc  func(doc storefront.Document, st navstate.State) Header
	cardFunc    func(doc storefront.Document, p storefront.Product) Card
	navFunc     func(doc storefront.Document, st navstate.State) NavBar
	contentFunc func(doc storefront.Document, st navstate.State) Content
)

var headerVariants = map[storefront.HeaderStyle]headerFunc{
	storefront.HeaderClassic: func(doc storefront.Document, st navstate.State) Header {
		return Header{Variant: storefront.HeaderClassic, Title: doc.Name, ShowMenu: true, CartBadge: st.CartCount}
	},
	storefront.HeaderModern: func(doc storefront.Document, st navstate.State) Header {
		return Header{Variant: storefront.HeaderModern, Title: doc.Name, Eyebrow: "Store", ShowMenu: true, CartBadge: st.CartCount}
	},
	storefront.HeaderMinimal: func(doc storefront.Document, st navstate.State) Header {
		return Header{Variant: storefront.HeaderMinimal, Title: doc.Name, AccentDot: doc.Theme.Primary, ShowSearch: true, CartBadge: st.CartCount}
	},
	storefront.HeaderBold: func(doc storefront.Document, st navstate.State) Header {
		return Header{
			Variant:    storefront.HeaderBold,
			Title:      doc.Name,
			TitleColor: doc.Theme.Text,
			ShowMenu:   true,
			ShowSearch: true,
			Large:      true,
			CartBadge:  st.CartCount,
		}
	},
}

func baseCard(doc storefront.Document, p storefront.Product, style storefront.CardStyle) Card {
	return Card{
		Variant:    style,
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceColor: doc.Theme.Primary,
		Image:      p.Image,
		Radius:     doc.Theme.Radius.CSS(),
	}
}

var cardVariants = map[storefront.CardStyle]cardFunc{
	storefront.CardGrid: func(doc storefront.Document, p storefront.Product) Card {
		c := baseCard(doc, p, storefront.CardGrid)
		c.Shadow = true
		return c
	},
	storefront.CardList: func(doc storefront.Document, p storefront.Product) Card {
		c := baseCard(doc, p, storefront.CardList)
		c.Horizontal = true
		c.InlineAdd = true
		return c
	},
	storefront.CardElegant: func(doc storefront.Document, p storefront.Product) Card {
		c := baseCard(doc, p, storefront.CardElegant)
		c.Radius = storefront.RadiusNone.CSS()
		c.Shadow = true
		return c
	},
	storefront.CardGlass: func(doc storefront.Document, p storefront.Product) Card {
		c := baseCard(doc, p, storefront.CardGlass)
		c.Translucent = true
		c.Shadow = true
		return c
	},
}

func baseNav(doc storefront.Document, st navstate.State, style storefront.NavBarStyle) NavBar {
	items := make([]NavItem, 0, len(doc.Navigation))
	for _, t := range doc.Navigation {
		items = append(items, NavItem{
			TabID:  t.ID,
			Label:  t.Label,
			Icon:   storefront.ResolveIcon(t.Icon),
			Route:  t.Route,
			Active: t.Route == st.Screen,
		})
	}
	return NavBar{Variant: style, ShowLabels: true, Items: items}
}

var navVariants = map[storefront.NavBarStyle]navFunc{
	storefront.NavClassic: func(doc storefront.Document, st navstate.State) NavBar {
		return baseNav(doc, st, storefront.NavClassic)
	},
	storefront.NavFloating: func(doc storefront.Document, st navstate.State) NavBar {
		n := baseNav(doc, st, storefront.NavFloating)
		n.Floating = true
		return n
	},
	storefront.NavGlass: func(doc storefront.Document, st navstate.State) NavBar {
		n := baseNav(doc, st, storefront.NavGlass)
		n.Translucent = true
		return n
	},
	storefront.NavMinimal: func(doc storefront.Document, st navstate.State) NavBar {
		n := baseNav(doc, st, storefront.NavMinimal)
		n.ShowLabels = false
		return n
	},
}

var screenContent = map[storefront.Screen]contentFunc{
	storefront.ScreenHome:       homeContent,
	storefront.ScreenCategories: categoriesContent,
	storefront.ScreenOffers:     offersContent,
	storefront.ScreenCart:       cartContent,
	storefront.ScreenOrders:     ordersContent,
	storefront.ScreenProfile:    profileContent,
}

func headerFor(style storefront.HeaderStyle) headerFunc {
	if f, ok := headerVariants[style]; ok {
		return f
	}
	return headerVariants[storefront.HeaderClassic]
}

func cardFor(style storefront.CardStyle) cardFunc {
	if f, ok := cardVariants[style]; ok {
		return f
	}
	return cardVariants[storefront.CardGrid]
}

func navFor(style storefront.NavBarStyle) navFunc {
	if f, ok := navVariants[style]; ok {
		return f
	}
	return navVariants[storefront.NavClassic]
}

// Render builds the phone screen for doc in state st. Layout values outside
// their enumeration fall back to CLASSIC header, GRID cards and CLASSIC nav;
// an unknown screen renders HOME.
func Render(doc storefront.Document, st navstate.State) Tree {
	if _, ok := screenContent[st.Screen]; !ok {
		st.Screen = storefront.ScreenHome
	}
	return Tree{
		Screen:     st.Screen,
		Font:       doc.Theme.Font.CSS(),
		Background: doc.Theme.Background,
		TextColor:  doc.Theme.Text,
		Accent:     doc.Theme.Primary,
		Header:     headerFor(doc.Layout.Header)(doc, st),
		Content:    screenContent[st.Screen](doc, st),
		NavBar:     navFor(doc.Layout.Navigation)(doc, st),
	}
}

// Columns is 1 for LIST cards and 2 otherwise.
func Columns(style storefront.CardStyle) int {
	if style == storefront.CardList {
		return 1
	}
	return 2
}

func cards(doc storefront.Document, products []storefront.Product) []Card {
	render := cardFor(doc.Layout.Card)
	out := make([]Card, 0, len(products))
	for _, p := range products {
		out = append(out, render(doc, p))
	}
	return out
}
