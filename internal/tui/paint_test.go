package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/localnerve/storefront-studio/internal/export"
	"github.com/localnerve/storefront-studio/internal/navstate"
	"github.com/localnerve/storefront-studio/internal/preview"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
)

func paintScreen(doc storefront.Document, screen storefront.Screen, cart int) string {
	return Paint(preview.Render(doc, navstate.State{Screen: screen, CartCount: cart}))
}

func TestPaintHome(t *testing.T) {
	out := paintScreen(storefront.NewDefault("u1"), storefront.ScreenHome, 0)

	assert.Contains(t, out, "PREMIUM STORE")
	assert.Contains(t, out, "Winter New Arrival")
	assert.Contains(t, out, "[ Shop Gallery ]")
	assert.Contains(t, out, "Featured")
	assert.Contains(t, out, "Luxe Watch")
	assert.Contains(t, out, "$299")
	assert.Contains(t, out, "[⌂ Home]")
	assert.Contains(t, out, "Offers")
}

func TestPaintMinimalNavHidesLabels(t *testing.T) {
	doc := storefront.NewDefault("u1")
	doc.Layout.Navigation = storefront.NavMinimal

	out := paintScreen(doc, storefront.ScreenHome, 0)
	assert.Contains(t, out, "[⌂]")
	assert.NotContains(t, out, "Offers")
}

func TestPaintCart(t *testing.T) {
	doc := storefront.NewDefault("u1")

	empty := paintScreen(doc, storefront.ScreenCart, 0)
	assert.Contains(t, empty, "Cart is empty")
	assert.Contains(t, empty, "Stripe")
	assert.Contains(t, empty, "Cash")
	assert.NotContains(t, empty, "PayPal")
	assert.Contains(t, empty, "Confirm Checkout")

	full := paintScreen(doc, storefront.ScreenCart, 3)
	assert.Contains(t, full, "Luxe Watch x3")
	assert.NotContains(t, full, "Cart is empty")
	assert.Contains(t, full, "◍ 3")
}

func TestPaintOffersOrdersProfile(t *testing.T) {
	doc := storefront.NewDefault("u1")

	offers := paintScreen(doc, storefront.ScreenOffers, 0)
	assert.Contains(t, offers, "Grand Opening")
	assert.Contains(t, offers, "Code: HELLO20")

	orders := paintScreen(doc, storefront.ScreenOrders, 0)
	assert.Contains(t, orders, "#9021")
	assert.Contains(t, orders, "In Transit")

	profile := paintScreen(doc, storefront.ScreenProfile, 0)
	assert.Contains(t, profile, "Order History ›")
	assert.Contains(t, profile, "My Wallet")
	assert.NotContains(t, profile, "My Wallet ›")
}

func TestPaintSharpCardsUseSquareBorder(t *testing.T) {
	doc := storefront.NewDefault("u1")
	doc.Theme.Radius = storefront.RadiusNone
	out := paintScreen(doc, storefront.ScreenCategories, 0)
	assert.Contains(t, out, "┌")

	doc.Theme.Radius = storefront.RadiusLarge
	out = paintScreen(doc, storefront.ScreenCategories, 0)
	assert.NotContains(t, out, "┌")
}

func TestPaintStep(t *testing.T) {
	st := DefaultStyles()

	half := PaintStep(st, export.Step{Progress: 45, Line: "[10:00:00] Theme: Indigo Dream"})
	assert.Contains(t, half, " 45% ")
	assert.Contains(t, half, strings.Repeat("█", 9))
	assert.Contains(t, half, "Theme: Indigo Dream")

	done := PaintStep(st, export.Step{Progress: 100, Done: true})
	assert.Contains(t, done, "100%")
	assert.Contains(t, done, strings.Repeat("█", 20))
}

func TestSummary(t *testing.T) {
	doc := storefront.NewDefault("u1")
	out := Summary(DefaultStyles(), doc)
	assert.Contains(t, out, "Premium Store")
	assert.Contains(t, out, "Indigo Dream")
	assert.Contains(t, out, "Home, Store, Offers, Cart")
	assert.Contains(t, out, "1 collections, 1 products")

	doc.Theme.Primary = "#123456"
	assert.Contains(t, Summary(DefaultStyles(), doc), "Custom (#123456)")
}

func TestFormValidators(t *testing.T) {
	assert.Error(t, requireText("name")("  "))
	assert.NoError(t, requireText("name")("Shoes"))

	atLeastTwo := minSelected[string](storefront.MinTabs, "tabs")
	assert.Error(t, atLeastTwo([]string{"t_home"}))
	assert.NoError(t, atLeastTwo([]string{"t_home", "t_cart"}))
}

func TestAborted(t *testing.T) {
	assert.True(t, Aborted(huh.ErrUserAborted))
	assert.False(t, Aborted(errors.New("boom")))
}
