// edit.go
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

package studio

import (
	"context"
	"errors"
	"slices"

	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/tui"
	"go.uber.org/zap"
)

// Edit runs the interactive builder until the user quits. Every change goes
// through an editor.Store seeded with the stored document.
func (s *Studio) Edit(ctx context.Context) error {
	doc, err := s.EditDocument(ctx)
	if err != nil {
		return err
	}
	store, err := editor.NewStore(doc, s.Client,
		editor.WithConfirmer(s.Confirmer),
		editor.WithLogger(s.Logger.Named("editor")),
	)
	if err != nil {
		return err
	}
	phone := NewPreviewSession(store)
	defer phone.Close()

	for {
		err = nil
		s.println(tui.Summary(s.Styles, store.Snapshot()))

		choice := tui.MenuQuit
		if err := tui.MenuForm(&choice).Run(); err != nil {
			if tui.Aborted(err) {
				return nil
			}
			return err
		}

		switch choice {
		case tui.MenuQuit:
			return nil
		case tui.MenuCatalog:
			err = s.editCatalog(ctx, store)
		case tui.MenuPromotions:
			err = s.editPromotions(ctx, store)
		case tui.MenuDesign:
			err = s.editDesign(ctx, store)
		case tui.MenuTabs:
			err = s.editTabs(ctx, store)
		case tui.MenuPayments:
			err = s.editPayments(ctx, store)
		case tui.MenuIdentity:
			err = s.editIdentity(ctx, store)
		case tui.MenuPreview:
			err = s.previewLoop(phone)
		case tui.MenuAdvice:
			s.storeAdvice(ctx, store.Snapshot())
		case tui.MenuPublish:
			_, err = s.Publish(ctx, store.Snapshot())
		case tui.MenuBuild:
			_, err = s.build(ctx, store.Snapshot())
		}
		if err != nil && !tui.Aborted(err) {
			s.report(err)
		}
	}
}

// report prints a failed action. Declined deletes are not errors.
func (s *Studio) report(err error) {
	if errors.Is(err, editor.ErrDeclined) {
		s.println(s.Styles.Subtle.Render("Cancelled."))
		return
	}
	s.Logger.Debug("action failed", zap.Error(err))
	s.println(s.Styles.Error.Render(userFacing(err).Error()))
}

// apply dispatches actions in order and stops at the first failure.
func apply(ctx context.Context, store *editor.Store, actions []editor.Action) error {
	for _, a := range actions {
		if _, err := store.Dispatch(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *Studio) editCatalog(ctx context.Context, store *editor.Store) error {
	actions := []string{tui.ActionEdit, tui.ActionRename, tui.ActionDelete}
	if !store.InFlight(editor.CollectionCreate{}.Kind()) && !store.InFlight(editor.ProductCreate{}.Kind()) {
		actions = append([]string{tui.ActionAdd}, actions...)
	}
	choice := tui.ActionBack
	if err := tui.ActionForm("Catalog", &choice, actions...).Run(); err != nil {
		return err
	}
	doc := store.Snapshot()

	switch choice {
	case tui.ActionAdd:
		target := tui.TargetProduct
		if len(doc.Collections) == 0 {
			target = tui.TargetCollection
		} else if err := tui.TargetForm("Add to catalog", &target).Run(); err != nil {
			return err
		}
		if target == tui.TargetCollection {
			var name string
			if err := tui.CollectionForm(&name).Run(); err != nil {
				return err
			}
			_, err := store.Dispatch(ctx, editor.CollectionCreate{Name: name})
			return err
		}
		var collectionID string
		if err := tui.CollectionSelect(doc.Collections, &collectionID).Run(); err != nil {
			return err
		}
		var fields editor.ProductFields
		if err := tui.ProductForm(&fields).Run(); err != nil {
			return err
		}
		_, err := store.Dispatch(ctx, editor.ProductCreate{CollectionID: collectionID, Fields: fields})
		return err

	case tui.ActionEdit:
		c, p, ok, err := pickProduct(doc)
		if !ok || err != nil {
			return err
		}
		fields := editor.ProductFields{Name: p.Name, Description: p.Description, Price: p.Price, Image: p.Image}
		if err := tui.ProductForm(&fields).Run(); err != nil {
			return err
		}
		_, err = store.Dispatch(ctx, editor.ProductUpdate{CollectionID: c.ID, ProductID: p.ID, Fields: fields})
		return err

	case tui.ActionRename:
		if len(doc.Collections) == 0 {
			return nil
		}
		var id string
		if err := tui.CollectionSelect(doc.Collections, &id).Run(); err != nil {
			return err
		}
		name := doc.Collections[doc.CollectionIndex(id)].Name
		if err := tui.CollectionForm(&name).Run(); err != nil {
			return err
		}
		_, err := store.Dispatch(ctx, editor.CollectionRename{ID: id, Name: name})
		return err

	case tui.ActionDelete:
		if len(doc.Collections) == 0 {
			return nil
		}
		target := tui.TargetProduct
		if err := tui.TargetForm("Delete from catalog", &target).Run(); err != nil {
			return err
		}
		if target == tui.TargetCollection {
			var id string
			if err := tui.CollectionSelect(doc.Collections, &id).Run(); err != nil {
				return err
			}
			_, err := store.Dispatch(ctx, editor.CollectionDelete{ID: id})
			return err
		}
		c, p, ok, err := pickProduct(doc)
		if !ok || err != nil {
			return err
		}
		_, err = store.Dispatch(ctx, editor.ProductDelete{CollectionID: c.ID, ProductID: p.ID})
		return err
	}
	return nil
}

func pickProduct(doc storefront.Document) (storefront.Collection, storefront.Product, bool, error) {
	if doc.SKUCount() == 0 {
		return storefront.Collection{}, storefront.Product{}, false, nil
	}
	var collectionID string
	if err := tui.CollectionSelect(doc.Collections, &collectionID).Run(); err != nil {
		return storefront.Collection{}, storefront.Product{}, false, err
	}
	c := doc.Collections[doc.CollectionIndex(collectionID)]
	if len(c.Products) == 0 {
		return c, storefront.Product{}, false, nil
	}
	var productID string
	if err := tui.ProductSelect(c, &productID).Run(); err != nil {
		return c, storefront.Product{}, false, err
	}
	for _, p := range c.Products {
		if p.ID == productID {
			return c, p, true, nil
		}
	}
	return c, storefront.Product{}, false, nil
}

func (s *Studio) editPromotions(ctx context.Context, store *editor.Store) error {
	choice := tui.ActionBack
	if err := tui.ActionForm("Promotions", &choice, tui.ActionAdd, tui.ActionEdit, tui.ActionDelete).Run(); err != nil {
		return err
	}
	doc := store.Snapshot()

	switch choice {
	case tui.ActionAdd:
		var fields editor.OfferFields
		if err := tui.OfferForm(&fields).Run(); err != nil {
			return err
		}
		_, err := store.Dispatch(ctx, editor.OfferCreate{Fields: fields})
		return err
	case tui.ActionEdit, tui.ActionDelete:
		if len(doc.Offers) == 0 {
			return nil
		}
		var id string
		if err := tui.OfferSelect(doc.Offers, &id).Run(); err != nil {
			return err
		}
		if choice == tui.ActionDelete {
			_, err := store.Dispatch(ctx, editor.OfferDelete{ID: id})
			return err
		}
		i := slices.IndexFunc(doc.Offers, func(o storefront.Offer) bool { return o.ID == id })
		o := doc.Offers[i]
		fields := editor.OfferFields{Title: o.Title, Discount: o.Discount, Code: o.Code, Description: o.Description}
		if err := tui.OfferForm(&fields).Run(); err != nil {
			return err
		}
		_, err := store.Dispatch(ctx, editor.OfferUpdate{ID: id, Fields: fields})
		return err
	}
	return nil
}

func (s *Studio) editDesign(ctx context.Context, store *editor.Store) error {
	doc := store.Snapshot()
	palette := ""
	layout := doc.Layout
	radius, font := doc.Theme.Radius, doc.Theme.Font
	if err := tui.DesignForm(&palette, &layout, &radius, &font).Run(); err != nil {
		return err
	}
	return apply(ctx, store, DesignActions(doc, palette, layout, radius, font))
}

const (
	tabsChoose  = "choose"
	tabsReorder = "reorder"
)

func (s *Studio) editTabs(ctx context.Context, store *editor.Store) error {
	doc := store.Snapshot()
	mode := tabsChoose
	if err := tui.ChoiceForm("Navigation tabs", []tui.Choice{
		{Label: "Choose tabs", Value: tabsChoose},
		{Label: "Reorder tabs", Value: tabsReorder},
	}, &mode).Run(); err != nil {
		return err
	}
	if mode == tabsReorder {
		id, position := doc.Navigation[0].ID, 0
		if err := tui.TabOrderForm(doc.Navigation, &id, &position).Run(); err != nil {
			return err
		}
		_, err := store.Dispatch(ctx, editor.TabMove{ID: id, Index: position})
		return err
	}

	selected := make([]string, len(doc.Navigation))
	for i, t := range doc.Navigation {
		selected[i] = t.ID
	}
	if err := tui.TabsForm(&selected).Run(); err != nil {
		return err
	}
	return apply(ctx, store, TabActions(doc, selected))
}

func (s *Studio) editPayments(ctx context.Context, store *editor.Store) error {
	doc := store.Snapshot()
	selected := slices.Clone(doc.Payment.Methods)
	if err := tui.PaymentsForm(&selected).Run(); err != nil {
		return err
	}
	return apply(ctx, store, PaymentActions(doc, selected))
}

func (s *Studio) editIdentity(ctx context.Context, store *editor.Store) error {
	doc := store.Snapshot()
	name, icon := doc.Name, doc.Icon
	if err := tui.IdentityForm(&name, &icon).Run(); err != nil {
		return err
	}
	return apply(ctx, store, []editor.Action{editor.NameSet{Name: name}, editor.IconSet{Icon: icon}})
}

// previewLoop paints the phone after every tap until the user goes back.
func (s *Studio) previewLoop(phone *PreviewSession) error {
	for {
		s.println(tui.Paint(phone.Frame()))
		choice := PreviewBack
		if err := tui.ChoiceForm("Preview", phone.Choices(), &choice).Run(); err != nil {
			return err
		}
		if choice == PreviewPin {
			screen := storefront.ScreenHome
			if err := tui.ScreenSelect(&screen).Run(); err != nil {
				return err
			}
			choice += string(screen)
		}
		note, done, err := phone.Apply(choice)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if note != "" {
			s.println(s.Styles.Subtle.Render(note))
		}
	}
}

// DesignActions turns the design form result into style actions. An empty
// palette keeps the current colors; unchanged values produce no action.
func DesignActions(doc storefront.Document, palette string, layout storefront.Layout, radius storefront.Radius, font storefront.Font) []editor.Action {
	var out []editor.Action
	if palette != "" {
		out = append(out, editor.PaletteApply{Name: palette})
	}
	if layout.Header != doc.Layout.Header {
		out = append(out, editor.HeaderStyleSet{Style: layout.Header})
	}
	if layout.Card != doc.Layout.Card {
		out = append(out, editor.CardStyleSet{Style: layout.Card})
	}
	if layout.Navigation != doc.Layout.Navigation {
		out = append(out, editor.NavBarStyleSet{Style: layout.Navigation})
	}
	if radius != doc.Theme.Radius {
		out = append(out, editor.ThemeSet{Field: storefront.ThemeRadius, Value: string(radius)})
	}
	if font != doc.Theme.Font {
		out = append(out, editor.ThemeSet{Field: storefront.ThemeFont, Value: string(font)})
	}
	return out
}

// TabActions toggles tabs so the enabled set matches selected. Enables come
// before disables so the minimum tab count never blocks a swap.
func TabActions(doc storefront.Document, selected []string) []editor.Action {
	var enable, disable []editor.Action
	for _, t := range storefront.TabCatalog {
		want := slices.Contains(selected, t.ID)
		have := slices.ContainsFunc(doc.Navigation, func(n storefront.Tab) bool { return n.ID == t.ID })
		switch {
		case want && !have:
			enable = append(enable, editor.TabToggle{ID: t.ID})
		case !want && have:
			disable = append(disable, editor.TabToggle{ID: t.ID})
		}
	}
	return append(enable, disable...)
}

// PaymentActions toggles methods so the enabled set matches selected,
// enabling first.
func PaymentActions(doc storefront.Document, selected []storefront.PaymentMethod) []editor.Action {
	var enable, disable []editor.Action
	for _, m := range storefront.PaymentMethods {
		want := slices.Contains(selected, m)
		have := slices.Contains(doc.Payment.Methods, m)
		switch {
		case want && !have:
			enable = append(enable, editor.PaymentToggle{Method: m})
		case !want && have:
			disable = append(disable, editor.PaymentToggle{Method: m})
		}
	}
	return append(enable, disable...)
}
