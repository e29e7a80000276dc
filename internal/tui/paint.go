// paint.go
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

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/localnerve/storefront-studio/internal/export"
	"github.com/localnerve/storefront-studio/internal/preview"
	"github.com/localnerve/storefront-studio/internal/storefront"
)

// PhoneWidth is the inner width of the painted phone frame in cells.
const PhoneWidth = 40

const sharpRadius = "0px"

func border(radius string) lipgloss.Border {
	if radius == sharpRadius {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

func glyph(icon string) string {
	return storefront.IconGlyph(icon)
}

// Paint draws tree as a phone-sized block of text.
func Paint(tree preview.Tree) string {
	body := []string{
		paintHeader(tree),
		paintContent(tree),
		paintNav(tree),
	}
	frame := lipgloss.NewStyle().
		Width(PhoneWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorInk).
		Background(lipgloss.Color(tree.Background)).
		Foreground(lipgloss.Color(tree.TextColor))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func paintHeader(tree preview.Tree) string {
	h := tree.Header
	title := lipgloss.NewStyle().Bold(true)
	if h.TitleColor != "" {
		title = title.Foreground(lipgloss.Color(h.TitleColor))
	}
	if h.Large {
		title = title.Underline(true)
	}

	var left []string
	if h.ShowMenu {
		left = append(left, glyph("Menu"))
	}
	if h.AccentDot != "" {
		left = append(left, lipgloss.NewStyle().Foreground(lipgloss.Color(h.AccentDot)).Render("●"))
	}
	left = append(left, title.Render(strings.ToUpper(h.Title)))

	var right []string
	if h.ShowSearch {
		right = append(right, glyph("Search"))
	}
	cart := glyph("ShoppingBag")
	if h.CartBadge > 0 {
		cart = fmt.Sprintf("%s %d", cart, h.CartBadge)
	}
	right = append(right, cart)

	line := spread(strings.Join(left, " "), strings.Join(right, " "), PhoneWidth)
	if h.Eyebrow == "" {
		return line
	}
	eyebrow := lipgloss.NewStyle().Foreground(colorMuted).Render(strings.ToUpper(h.Eyebrow))
	return lipgloss.JoinVertical(lipgloss.Left, eyebrow, line)
}

// spread places left and right at the edges of a line width cells wide.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func paintContent(tree preview.Tree) string {
	c := tree.Content
	var parts []string
	if c.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).MarginTop(1).Render(c.Title))
	}
	if c.Banner != nil {
		parts = append(parts, paintBanner(*c.Banner))
	}
	for _, s := range c.Sections {
		parts = append(parts, paintSection(s))
	}
	if len(c.Offers) > 0 {
		offers := make([]string, 0, len(c.Offers))
		for _, o := range c.Offers {
			offers = append(offers, paintOffer(o))
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, offers...))
	}
	if c.Cart != nil {
		parts = append(parts, paintCart(*c.Cart, tree.Accent))
	}
	for _, o := range c.Orders {
		parts = append(parts, paintOrder(o))
	}
	if c.Profile != nil {
		parts = append(parts, paintProfile(*c.Profile))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func paintBanner(b preview.Banner) string {
	style := lipgloss.NewStyle().
		Width(PhoneWidth-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.Color))
	action := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Bold(true).Render("[ " + b.Action + " ]")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(b.Title),
		b.Subtitle,
		action,
	))
}

func paintSection(s preview.Section) string {
	heading := lipgloss.NewStyle().Bold(true).Render(s.Title)
	if s.Action != "" {
		heading = spread(heading, lipgloss.NewStyle().Foreground(colorMuted).Render(s.Action+" ›"), PhoneWidth)
	}

	cols := max(s.Columns, 1)
	cardWidth := PhoneWidth/cols - 2
	var rows []string
	for i := 0; i < len(s.Cards); i += cols {
		end := min(i+cols, len(s.Cards))
		row := make([]string, 0, cols)
		for _, c := range s.Cards[i:end] {
			row = append(row, paintCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{heading}, rows...)...)
}

func paintCard(c preview.Card, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Border(border(c.Radius))
	if c.Translucent {
		style = style.Faint(true)
	}
	if c.Shadow {
		style = style.BorderBottom(true).BorderForeground(colorInk)
	}

	price := lipgloss.NewStyle().Foreground(lipgloss.Color(c.PriceColor)).Bold(true).Render(c.Price)
	name := lipgloss.NewStyle().Bold(true).Render(c.Name)
	if c.Horizontal {
		line := "▨ " + name
		if c.InlineAdd {
			return style.Render(spread(line, price+" [+]", width))
		}
		return style.Render(spread(line, price, width))
	}
	img := "▨ [+]"
	if c.InlineAdd {
		img = "▨"
		price += " [+]"
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, img, name, price))
}

func paintOffer(o preview.OfferCard) string {
	style := lipgloss.NewStyle().
		Width(PhoneWidth-2).
		Padding(0, 1).
		Border(border(o.Radius)).
		BorderForeground(lipgloss.Color(o.Color))
	discount := lipgloss.NewStyle().Foreground(lipgloss.Color(o.Color)).Bold(true).Render(o.Discount)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		spread(lipgloss.NewStyle().Bold(true).Render(o.Title), discount, PhoneWidth-4),
		"Code: "+o.Code,
	))
}

func paintCart(c preview.Cart, accent string) string {
	var lines []string
	if c.Line != nil {
		lines = append(lines, spread(fmt.Sprintf("▨ %s x%d", c.Line.Name, c.Line.Quantity), c.Line.Price, PhoneWidth))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorMuted).Render(c.EmptyState))
	}
	lines = append(lines, "", "Payment")
	for _, p := range c.Payments {
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(glyph(p.Icon))
		lines = append(lines, mark+" "+p.Name)
	}

	button := lipgloss.NewStyle().
		Width(PhoneWidth-2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())
	if c.Checkout.Enabled {
		button = button.Bold(true).BorderForeground(lipgloss.Color(accent))
	} else {
		button = button.Faint(true)
	}
	lines = append(lines, button.Render(c.Checkout.Label))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func paintOrder(o preview.Order) string {
	return lipgloss.NewStyle().
		Width(PhoneWidth-2).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			spread("#"+o.ID+" · "+o.Date, o.Status, PhoneWidth-2),
			spread(fmt.Sprintf("%s x%d", o.ItemName, o.Quantity), o.Total, PhoneWidth-2),
		))
}

func paintProfile(p preview.Profile) string {
	lines := []string{
		glyph("User") + " " + lipgloss.NewStyle().Bold(true).Render(p.Name),
		lipgloss.NewStyle().Foreground(colorMuted).Render(p.Subtitle),
		"",
	}
	for _, m := range p.Menu {
		entry := glyph(m.Icon) + " " + m.Label
		if m.Route != "" {
			entry += " ›"
		}
		lines = append(lines, entry)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func paintNav(tree preview.Tree) string {
	n := tree.NavBar
	if len(n.Items) == 0 {
		return ""
	}
	cell := PhoneWidth / len(n.Items)
	items := make([]string, 0, len(n.Items))
	for _, it := range n.Items {
		label := glyph(it.Icon)
		if n.ShowLabels {
			label += " " + it.Label
		}
		style := lipgloss.NewStyle().Width(cell).Align(lipgloss.Center)
		if it.Active {
			style = style.Bold(true).Foreground(lipgloss.Color(tree.Accent))
			label = "[" + label + "]"
		} else if n.Translucent {
			style = style.Faint(true)
		}
		items = append(items, style.Render(label))
	}

	bar := lipgloss.NewStyle().MarginTop(1)
	switch {
	case n.Floating:
		bar = bar.Border(lipgloss.RoundedBorder())
	default:
		bar = bar.Border(lipgloss.NormalBorder(), true, false, false, false)
	}
	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

// PaintStep renders one build log line with a progress bar.
func PaintStep(st Styles, step export.Step) string {
	const barWidth = 20
	filled := step.Progress * barWidth / 100
	bar := st.ProgressFill.Render(strings.Repeat("█", filled)) +
		st.ProgressEmpty.Render(strings.Repeat("░", barWidth-filled))
	line := step.Line
	if step.Done {
		line = st.Success.Render(line)
	}
	return fmt.Sprintf("%s %3d%% %s", bar, step.Progress, line)
}

// Summary lists the key facts of a document for the studio dashboard.
func Summary(st Styles, doc storefront.Document) string {
	palette := "Custom"
	if p, ok := storefront.PaletteByPrimary(doc.Theme.Primary); ok {
		palette = p.Name
	}
	tabs := make([]string, len(doc.Navigation))
	for i, t := range doc.Navigation {
		tabs[i] = t.Label
	}
	methods := make([]string, len(doc.Payment.Methods))
	for i, m := range doc.Payment.Methods {
		methods[i] = string(m)
	}
	rows := []string{
		st.Title.Render(doc.Name) + st.Subtle.Render("  "+doc.ID),
		fmt.Sprintf("Palette:  %s (%s)", palette, doc.Theme.Primary),
		fmt.Sprintf("Layout:   header %s, cards %s, nav %s", doc.Layout.Header, doc.Layout.Card, doc.Layout.Navigation),
		fmt.Sprintf("Tabs:     %s", strings.Join(tabs, ", ")),
		fmt.Sprintf("Payments: %s", strings.Join(methods, ", ")),
		fmt.Sprintf("Catalog:  %d collections, %d products", len(doc.Collections), doc.SKUCount()),
		fmt.Sprintf("Offers:   %d", len(doc.Offers)),
	}
	return st.Box.Render(strings.Join(rows, "\n"))
}
