// actions.go
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

import "github.com/localnerve/storefront-studio/internal/storefront"

// Action is a request to change the document held by a Store.
type Action interface {
	Kind() string
}

// Remote-backed actions.
type (
	CollectionCreate struct{ Name string }
	ProductCreate    struct {
		CollectionID string
		Fields       ProductFields
	}
)

// Local catalog and promotion actions.
type (
	CollectionRename struct{ ID, Name string }
	CollectionDelete struct{ ID string }
	ProductUpdate    struct {
		CollectionID, ProductID string
		Fields                  ProductFields
	}
	ProductDelete struct{ CollectionID, ProductID string }
	OfferCreate   struct{ Fields OfferFields }
	OfferUpdate   struct {
		ID     string
		Fields OfferFields
	}
	OfferDelete struct{ ID string }
)

// Style actions.
type (
	PaletteApply   struct{ Name string }
	ThemeSet       struct {
		Field storefront.ThemeField
		Value string
	}
	CardStyleSet   struct{ Style storefront.CardStyle }
	NavBarStyleSet struct{ Style storefront.NavBarStyle }
	HeaderStyleSet struct{ Style storefront.HeaderStyle }
	NameSet        struct{ Name string }
	IconSet        struct{ Icon string }
	TabToggle      struct{ ID string }
	TabMove        struct {
		ID    string
		Index int
	}
	PaymentToggle struct{ Method storefront.PaymentMethod }
)

// DocumentReplace swaps in a document loaded from persistence.
type DocumentReplace struct{ Doc storefront.Document }

func (CollectionCreate) Kind() string { return "collection.create" }
func (ProductCreate) Kind() string    { return "product.create" }
func (CollectionRename) Kind() string { return "collection.rename" }
func (CollectionDelete) Kind() string { return "collection.delete" }
func (ProductUpdate) Kind() string    { return "product.update" }
func (ProductDelete) Kind() string    { return "product.delete" }
func (OfferCreate) Kind() string      { return "offer.create" }
func (OfferUpdate) Kind() string      { return "offer.update" }
func (OfferDelete) Kind() string      { return "offer.delete" }
func (PaletteApply) Kind() string     { return "palette.apply" }
func (ThemeSet) Kind() string         { return "theme.set" }
func (CardStyleSet) Kind() string     { return "layout.card" }
func (NavBarStyleSet) Kind() string   { return "layout.navigation" }
func (HeaderStyleSet) Kind() string   { return "layout.header" }
func (NameSet) Kind() string          { return "name.set" }
func (IconSet) Kind() string          { return "icon.set" }
func (TabToggle) Kind() string        { return "tab.toggle" }
func (TabMove) Kind() string          { return "tab.move" }
func (PaymentToggle) Kind() string    { return "payment.toggle" }
func (DocumentReplace) Kind() string  { return "document.replace" }

// reduce applies a local action. Remote-backed actions are handled by the Store.
// A false changed result means the action was a guarded no-op. The result is
// validated before it is returned.
func reduce(doc storefront.Document, a Action) (out storefront.Document, changed bool, err error) {
	switch a := a.(type) {
	case CollectionRename:
		out, err = RenameCollection(doc, a.ID, a.Name)
	case CollectionDelete:
		out, err = DeleteCollection(doc, a.ID, Always)
	case ProductUpdate:
		out, err = UpdateProduct(doc, a.CollectionID, a.ProductID, a.Fields)
	case ProductDelete:
		out, err = DeleteProduct(doc, a.CollectionID, a.ProductID, Always)
	case OfferCreate:
		out, _, err = CreateOffer(doc, a.Fields)
	case OfferUpdate:
		out, err = UpdateOffer(doc, a.ID, a.Fields)
	case OfferDelete:
		out, err = DeleteOffer(doc, a.ID, Always)
	case PaletteApply:
		out, err = ApplyPalette(doc, a.Name)
	case ThemeSet:
		out, err = storefront.ApplyThemeChange(doc, a.Field, a.Value)
	case CardStyleSet:
		out, err = SetCardStyle(doc, a.Style)
	case NavBarStyleSet:
		out, err = SetNavBarStyle(doc, a.Style)
	case HeaderStyleSet:
		out, err = SetHeaderStyle(doc, a.Style)
	case NameSet:
		out, err = SetName(doc, a.Name)
	case IconSet:
		out, err = SetIcon(doc, a.Icon)
	case TabToggle:
		if out, changed, err = ToggleTab(doc, a.ID); err == nil && !changed {
			return doc, false, nil
		}
	case TabMove:
		out, err = MoveTab(doc, a.ID, a.Index)
	case PaymentToggle:
		if out, changed, err = TogglePaymentMethod(doc, a.Method); err == nil && !changed {
			return doc, false, nil
		}
	case DocumentReplace:
		out = a.Doc.Clone()
	default:
		return doc, false, &storefront.ValidationError{Field: "action", Reason: "unsupported action " + a.Kind()}
	}
	if err == nil {
		err = out.Validate()
	}
	if err != nil {
		return doc, false, err
	}
	return out, true, nil
}
