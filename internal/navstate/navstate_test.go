package navstate

import (
	"testing"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	m := New()
	assert.Equal(t, State{Screen: storefront.ScreenHome}, m.State())
	assert.False(t, m.CanCheckout())
}

func TestCartCountSurvivesNavigation(t *testing.T) {
	doc := storefront.NewDefault("u")
	m := New()
	m.AddToCart()
	m.AddToCart()

	m.Explore()
	assert.Equal(t, storefront.ScreenCategories, m.Current())
	m.AddToCart()

	cart, _ := storefront.TabByID("t_cart")
	require.NoError(t, m.TapTab(cart))
	assert.Equal(t, storefront.ScreenCart, m.Current())

	require.NoError(t, m.TapTab(doc.Navigation[0]))
	assert.Equal(t, storefront.ScreenHome, m.Current())
	assert.Equal(t, 3, m.State().CartCount)

	m.ClearCart()
	assert.Zero(t, m.State().CartCount)
}

func TestFullyConnected(t *testing.T) {
	m := New()
	for _, from := range storefront.Screens {
		for _, to := range storefront.Screens {
			require.NoError(t, m.Navigate(from))
			require.NoError(t, m.Navigate(to))
			assert.Equal(t, to, m.Current())
		}
	}
	assert.ErrorIs(t, m.Navigate("CHECKOUT"), ErrUnknownScreen)
}

func TestForcedScreenTakesPrecedence(t *testing.T) {
	m := New()
	require.NoError(t, m.Force(storefront.ScreenOffers))
	m.OpenCart()
	assert.Equal(t, storefront.ScreenOffers, m.Current())
	assert.True(t, m.Forced())

	m.ClearForce()
	assert.False(t, m.Forced())
	assert.Equal(t, storefront.ScreenCart, m.Current())

	assert.ErrorIs(t, m.Force("NOPE"), ErrUnknownScreen)
}

func TestProfileEntries(t *testing.T) {
	m := New()
	require.NoError(t, m.Navigate(storefront.ScreenProfile))

	for _, e := range []ProfileEntry{ProfileWallet, ProfilePreferences, ProfileExitSession} {
		assert.False(t, m.SelectProfileEntry(e))
		assert.Equal(t, storefront.ScreenProfile, m.Current())
	}
	assert.True(t, m.SelectProfileEntry(ProfileOrderHistory))
	assert.Equal(t, storefront.ScreenOrders, m.Current())
}
