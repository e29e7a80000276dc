// navstate.go
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

// Package navstate tracks which preview screen is showing and the demo cart
// count. Every screen can reach every other; transitions only happen on
// explicit user actions.
package navstate

import (
	"errors"
	"fmt"

	"github.com/localnerve/storefront-studio/internal/storefront"
)

// ErrUnknownScreen is returned for a screen outside the fixed set.
var ErrUnknownScreen = errors.New("unknown screen")

// ProfileEntry is an item of the static profile menu.
type ProfileEntry string

const (
	ProfileOrderHistory ProfileEntry = "Order History"
	ProfileWallet       ProfileEntry = "My Wallet"
	ProfilePreferences  ProfileEntry = "Preferences"
	ProfileExitSession  ProfileEntry = "Exit Session"
)

// ProfileEntries lists the profile menu in display order.
var ProfileEntries = []ProfileEntry{ProfileOrderHistory, ProfileWallet, ProfilePreferences, ProfileExitSession}

// State is what the renderer needs from the machine.
type State struct {
	Screen    storefront.Screen
	CartCount int
}

// Machine is not safe for concurrent use; it is owned by the preview loop.
type Machine struct {
	current   storefront.Screen
	forced    storefront.Screen
	cartCount int
}

// New returns a machine on HOME with an empty cart.
func New() *Machine {
	return &Machine{current: storefront.ScreenHome}
}

// Current is the forced screen when one is set, otherwise the navigated one.
func (m *Machine) Current() storefront.Screen {
	if m.forced != "" {
		return m.forced
	}
	return m.current
}

func (m *Machine) Navigate(s storefront.Screen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, s)
	}
	m.current = s
	return nil
}

// TapTab follows a navigation tab to its route.
func (m *Machine) TapTab(tab storefront.Tab) error {
	return m.Navigate(tab.Route)
}

// Explore is the HOME banner action.
func (m *Machine) Explore() {
	m.current = storefront.ScreenCategories
}

// OpenCart is the header cart icon.
func (m *Machine) OpenCart() {
	m.current = storefront.ScreenCart
}

// SelectProfileEntry reports whether the entry changed the screen. Only
// Order History navigates; the others are inert in the preview.
func (m *Machine) SelectProfileEntry(e ProfileEntry) bool {
	if e == ProfileOrderHistory {
		m.current = storefront.ScreenOrders
		return true
	}
	return false
}

// Force pins the preview to s until ClearForce is called.
func (m *Machine) Force(s storefront.Screen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, s)
	}
	m.forced = s
	return nil
}

// Forced reports whether a screen is pinned.
func (m *Machine) Forced() bool {
	return m.forced != ""
}

func (m *Machine) ClearForce() {
	m.forced = ""
}

func (m *Machine) AddToCart() {
	m.cartCount++
}

func (m *Machine) ClearCart() {
	m.cartCount = 0
}

// CanCheckout reports whether the checkout button is enabled.
func (m *Machine) CanCheckout() bool {
	return m.cartCount > 0
}

func (m *Machine) State() State {
	return State{Screen: m.Current(), CartCount: m.cartCount}
}
