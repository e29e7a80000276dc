// theme.go
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

// ThemeField names an editable theme attribute.
type ThemeField string

const (
	ThemePrimary    ThemeField = "primary"
	ThemeSecondary  ThemeField = "secondary"
	ThemeBackground ThemeField = "background"
	ThemeText       ThemeField = "text"
	ThemeRadius     ThemeField = "radius"
	ThemeFont       ThemeField = "font"
)

// ApplyThemeChange returns a copy of doc with one theme field replaced.
// Colors must be non-empty; radius and font must name a known value.
func ApplyThemeChange(doc Document, field ThemeField, value string) (Document, error) {
	value = strings.TrimSpace(value)
	out := doc.Clone()
	switch field {
	case ThemePrimary, ThemeSecondary, ThemeBackground, ThemeText:
		if value == "" {
			return doc, Required("theme." + string(field))
		}
		switch field {
		case ThemePrimary:
			out.Theme.Primary = value
		case ThemeSecondary:
			out.Theme.Secondary = value
		case ThemeBackground:
			out.Theme.Background = value
		default:
			out.Theme.Text = value
		}
	case ThemeRadius:
		r, ok := ParseRadius(value)
		if !ok {
			return doc, &ValidationError{Field: "theme.radius", Reason: "unknown radius " + value}
		}
		out.Theme.Radius = r
	case ThemeFont:
		f, ok := ParseFont(value)
		if !ok {
			return doc, &ValidationError{Field: "theme.font", Reason: "unknown font " + value}
		}
		out.Theme.Font = f
	default:
		return doc, &ValidationError{Field: "theme", Reason: "unknown field " + string(field)}
	}
	return out, nil
}
