// style.go
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

package editor

import (
	"fmt"
	"strings"

	"github.com/localnerve/storefront-studio/internal/storefront"
)

// ApplyPalette sets primary, secondary and background from a named palette.
// Existing offers keep the color they were saved with.
func ApplyPalette(doc storefront.Document, name string) (storefront.Document, error) {
	p, ok := storefront.PaletteByName(name)
	if !ok {
		return doc, fmt.Errorf("palette %q: %w", name, ErrNotFound)
	}
	out := doc.Clone()
	out.Theme.Primary = p.Primary
	out.Theme.Secondary = p.Secondary
	out.Theme.Background = p.Container
	return out, nil
}

func SetCardStyle(doc storefront.Document, s storefront.CardStyle) (storefront.Document, error) {
	if !s.Valid() {
		return doc, &storefront.ValidationError{Field: "layout.card", Reason: "unknown card style " + string(s)}
	}
	out := doc.Clone()
	out.Layout.Card = s
	return out, nil
}

func SetNavBarStyle(doc storefront.Document, s storefront.NavBarStyle) (storefront.Document, error) {
	if !s.Valid() {
		return doc, &storefront.ValidationError{Field: "layout.navigation", Reason: "unknown navigation style " + string(s)}
	}
	out := doc.Clone()
	out.Layout.Navigation = s
	return out, nil
}

func SetHeaderStyle(doc storefront.Document, s storefront.HeaderStyle) (storefront.Document, error) {
	if !s.Valid() {
		return doc, &storefront.ValidationError{Field: "layout.header", Reason: "unknown header style " + string(s)}
	}
	out := doc.Clone()
	out.Layout.Header = s
	return out, nil
}

// SetName renames the app. The export file name follows the app name.
func SetName(doc storefront.Document, name string) (storefront.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return doc, storefront.Required("name")
	}
	out := doc.Clone()
	out.Name = name
	return out, nil
}

func SetIcon(doc storefront.Document, icon string) (storefront.Document, error) {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return doc, storefront.Required("icon")
	}
	out := doc.Clone()
	out.Icon = icon
	return out, nil
}

// ToggleTab enables a catalog tab (appending it) or disables an enabled one.
// Disabling is refused while only MinTabs remain; changed reports whether the
// document differs from the input.
func ToggleTab(doc storefront.Document, tabID string) (out storefront.Document, changed bool, err error) {
	tab, ok := storefront.TabByID(tabID)
	if !ok {
		return doc, false, fmt.Errorf("tab %s: %w", tabID, ErrNotFound)
	}
	for i, t := range doc.Navigation {
		if t.ID != tabID {
			continue
		}
		if len(doc.Navigation) <= storefront.MinTabs {
			return doc, false, nil
		}
		out = doc.Clone()
		out.Navigation = append(out.Navigation[:i], out.Navigation[i+1:]...)
		return out, true, nil
	}
	out = doc.Clone()
	out.Navigation = append(out.Navigation, tab)
	return out, true, nil
}

// MoveTab moves an enabled tab to index, clamped to the enabled range.
func MoveTab(doc storefront.Document, tabID string, index int) (storefront.Document, error) {
	from := -1
	for i, t := range doc.Navigation {
		if t.ID == tabID {
			from = i
			break
		}
	}
	if from < 0 {
		return doc, fmt.Errorf("tab %s: %w", tabID, ErrNotFound)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(doc.Navigation) {
		index = len(doc.Navigation) - 1
	}

	out := doc.Clone()
	tab := out.Navigation[from]
	rest := append(out.Navigation[:from:from], out.Navigation[from+1:]...)
	moved := make([]storefront.Tab, 0, len(doc.Navigation))
	moved = append(moved, rest[:index]...)
	moved = append(moved, tab)
	moved = append(moved, rest[index:]...)
	out.Navigation = moved
	return out, nil
}

// TogglePaymentMethod enables or disables a gateway. Only the removal of the
// last enabled method is refused.
func TogglePaymentMethod(doc storefront.Document, m storefront.PaymentMethod) (out storefront.Document, changed bool, err error) {
	if !m.Valid() {
		return doc, false, &storefront.ValidationError{Field: "payment.methods", Reason: "unknown payment method " + string(m)}
	}
	for i, have := range doc.Payment.Methods {
		if have != m {
			continue
		}
		if len(doc.Payment.Methods) <= storefront.MinPaymentMethods {
			return doc, false, nil
		}
		out = doc.Clone()
		out.Payment.Methods = append(out.Payment.Methods[:i], out.Payment.Methods[i+1:]...)
		return out, true, nil
	}
	out = doc.Clone()
	out.Payment.Methods = append(out.Payment.Methods, m)
	return out, true, nil
}
