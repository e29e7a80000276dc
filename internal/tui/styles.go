// styles.go
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

// Package tui paints preview trees with lipgloss and collects editor input
// with huh forms.
package tui

import "github.com/charmbracelet/lipgloss"

// Studio chrome colors. Storefront colors come from the document theme.
var (
	colorInk     = lipgloss.Color("#1f2937")
	colorMuted   = lipgloss.Color("#9ca3af")
	colorBrand   = lipgloss.Color("#4f46e5")
	colorSuccess = lipgloss.Color("#16a34a")
	colorError   = lipgloss.Color("#dc2626")
	colorWarning = lipgloss.Color("#d97706")
)

// Styles holds the lipgloss styles for studio output outside the phone frame.
type Styles struct {
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style

	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// DefaultStyles returns the default studio styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(colorMuted),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colorWarning),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorInk).
			Padding(0, 1),

		ProgressFill: lipgloss.NewStyle().
			Foreground(colorBrand),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}
