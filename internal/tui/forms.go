// forms.go
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
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/storefront"
)

// Confirmer asks destructive-action prompts through a huh confirm field.
// An aborted prompt counts as "no".
type Confirmer struct {
	Accessible bool
}

var _ editor.Confirmer = Confirmer{}

func (c Confirmer) Confirm(prompt string) bool {
	ok := false
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&ok),
	)).WithAccessible(c.Accessible).Run()
	return err == nil && ok
}

// Aborted reports whether err came from the user leaving a form.
func Aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func minSelected[T comparable](n int, what string) func([]T) error {
	return func(v []T) error {
		if len(v) < n {
			return fmt.Errorf("select at least %d %s", n, what)
		}
		return nil
	}
}

func LoginForm(email, password *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(email).Validate(requireText("email")),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password).Validate(requireText("password")),
	))
}

func SignupForm(name, email, password *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Full name").Value(name).Validate(requireText("name")),
		huh.NewInput().Title("Email").Value(email).Validate(requireText("email")),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password).Validate(requireText("password")),
	))
}

// Menu choices of the editor loop.
const (
	MenuCatalog    = "catalog"
	MenuPromotions = "promotions"
	MenuDesign     = "design"
	MenuTabs       = "tabs"
	MenuPayments   = "payments"
	MenuIdentity   = "identity"
	MenuPreview    = "preview"
	MenuAdvice     = "advice"
	MenuPublish    = "publish"
	MenuBuild      = "build"
	MenuQuit       = "quit"
)

func MenuForm(choice *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Storefront Studio").
			Options(
				huh.NewOption("Catalog", MenuCatalog),
				huh.NewOption("Promotions", MenuPromotions),
				huh.NewOption("Design", MenuDesign),
				huh.NewOption("Navigation tabs", MenuTabs),
				huh.NewOption("Payment methods", MenuPayments),
				huh.NewOption("App name and icon", MenuIdentity),
				huh.NewOption("Preview", MenuPreview),
				huh.NewOption("Smart Assistant", MenuAdvice),
				huh.NewOption("Publish", MenuPublish),
				huh.NewOption("Build & export", MenuBuild),
				huh.NewOption("Quit", MenuQuit),
			).
			Value(choice),
	))
}

// Catalog and promotion sub-actions.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionRename = "rename"
	ActionDelete = "delete"
	ActionBack   = "back"
)

// ActionForm picks what to do with a catalog entity.
func ActionForm(title string, choice *string, actions ...string) *huh.Form {
	labels := map[string]string{
		ActionAdd:    "Add",
		ActionEdit:   "Edit",
		ActionRename: "Rename",
		ActionDelete: "Delete",
		ActionBack:   "Back",
	}
	opts := make([]huh.Option[string], 0, len(actions)+1)
	for _, a := range append(actions, ActionBack) {
		opts = append(opts, huh.NewOption(labels[a], a))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(choice),
	))
}

// Targets of catalog add and delete actions.
const (
	TargetCollection = "collection"
	TargetProduct    = "product"
)

func TargetForm(title string, target *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOption("Product", TargetProduct), huh.NewOption("Collection", TargetCollection)).
			Value(target),
	))
}

func CollectionForm(name *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Collection name").Value(name).Validate(requireText("name")),
	))
}

// CollectionSelect picks one collection by id.
func CollectionSelect(collections []storefront.Collection, id *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(collections))
	for _, c := range collections {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d)", c.Name, len(c.Products)), c.ID))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Collection").Options(opts...).Value(id),
	))
}

// ProductSelect picks one product of a collection by id.
func ProductSelect(c storefront.Collection, id *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(c.Products))
	for _, p := range c.Products {
		opts = append(opts, huh.NewOption(p.Name+"  "+p.Price, p.ID))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Product in "+c.Name).Options(opts...).Value(id),
	))
}

func ProductForm(f *editor.ProductFields) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Product name").Value(&f.Name).Validate(requireText("name")),
		huh.NewInput().Title("Price").Placeholder("$0").Value(&f.Price),
		huh.NewText().Title("Description").Value(&f.Description),
		huh.NewInput().Title("Image URL").Value(&f.Image),
	))
}

func OfferSelect(offers []storefront.Offer, id *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(offers))
	for _, o := range offers {
		opts = append(opts, huh.NewOption(o.Title+"  "+o.Discount, o.ID))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Campaign").Options(opts...).Value(id),
	))
}

func OfferForm(f *editor.OfferFields) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&f.Title).Validate(requireText("title")),
		huh.NewInput().Title("Discount").Placeholder("20% OFF").Value(&f.Discount).Validate(requireText("discount")),
		huh.NewInput().Title("Code").Value(&f.Code).Validate(requireText("code")),
		huh.NewText().Title("Description").Value(&f.Description),
	))
}

func enumOptions[T ~string](opts []storefront.Option[T]) []huh.Option[T] {
	out := make([]huh.Option[T], 0, len(opts))
	for _, o := range opts {
		out = append(out, huh.NewOption(o.Name, o.Value))
	}
	return out
}

// DesignForm edits palette, layout variants, radius and font in one pass.
// palette is left empty to keep the current colors.
func DesignForm(palette *string, layout *storefront.Layout, radius *storefront.Radius, font *storefront.Font) *huh.Form {
	paletteOpts := []huh.Option[string]{huh.NewOption("Keep current colors", "")}
	for _, p := range storefront.Palettes {
		paletteOpts = append(paletteOpts, huh.NewOption(p.Name, p.Name))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Palette").Options(paletteOpts...).Value(palette),
		),
		huh.NewGroup(
			huh.NewSelect[storefront.HeaderStyle]().Title("Header").Options(enumOptions(storefront.HeaderOptions)...).Value(&layout.Header),
			huh.NewSelect[storefront.CardStyle]().Title("Product cards").Options(enumOptions(storefront.CardOptions)...).Value(&layout.Card),
			huh.NewSelect[storefront.NavBarStyle]().Title("Navigation bar").Options(enumOptions(storefront.NavBarOptions)...).Value(&layout.Navigation),
		),
		huh.NewGroup(
			huh.NewSelect[storefront.Radius]().Title("Corner radius").Options(enumOptions(storefront.RadiusOptions)...).Value(radius),
			huh.NewSelect[storefront.Font]().Title("Font").Options(enumOptions(storefront.FontOptions)...).Value(font),
		),
	)
}

// TabsForm selects enabled tab ids. At least storefront.MinTabs are required.
func TabsForm(selected *[]string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(storefront.TabCatalog))
	for _, t := range storefront.TabCatalog {
		opts = append(opts, huh.NewOption(glyph(t.Icon)+" "+t.Label, t.ID))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Navigation tabs").
			Options(opts...).
			Value(selected).
			Validate(minSelected[string](storefront.MinTabs, "tabs")),
	))
}

func PaymentsForm(selected *[]storefront.PaymentMethod) *huh.Form {
	opts := make([]huh.Option[storefront.PaymentMethod], 0, len(storefront.PaymentOptions))
	for _, o := range storefront.PaymentOptions {
		opts = append(opts, huh.NewOption(o.Name, o.Method))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[storefront.PaymentMethod]().
			Title("Payment methods").
			Options(opts...).
			Value(selected).
			Validate(minSelected[storefront.PaymentMethod](storefront.MinPaymentMethods, "payment method")),
	))
}

func IdentityForm(name, icon *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("App name").Value(name).Validate(requireText("name")),
		huh.NewInput().Title("App icon").Value(icon).Validate(requireText("icon")),
	))
}

// Choice is one entry of a select built at run time.
type Choice struct {
	Label string
	Value string
}

func ChoiceForm(title string, choices []Choice, value *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(value),
	))
}

// ScreenSelect picks the screen the preview is pinned to.
func ScreenSelect(screen *storefront.Screen) *huh.Form {
	opts := make([]huh.Option[storefront.Screen], 0, len(storefront.Screens))
	for _, s := range storefront.Screens {
		opts = append(opts, huh.NewOption(string(s), s))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[storefront.Screen]().Title("Pin preview to").Options(opts...).Value(screen),
	))
}

// TabOrderForm picks an enabled tab and its new zero-based position.
func TabOrderForm(tabs []storefront.Tab, id *string, position *int) *huh.Form {
	tabOpts := make([]huh.Option[string], 0, len(tabs))
	posOpts := make([]huh.Option[int], 0, len(tabs))
	for i, t := range tabs {
		tabOpts = append(tabOpts, huh.NewOption(glyph(t.Icon)+" "+t.Label, t.ID))
		posOpts = append(posOpts, huh.NewOption(fmt.Sprintf("Position %d", i+1), i))
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Move tab").Options(tabOpts...).Value(id),
		huh.NewSelect[int]().Title("To").Options(posOpts...).Value(position),
	))
}
