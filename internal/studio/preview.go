// preview.go
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
	"fmt"
	"strings"
	"sync"

	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/navstate"
	"github.com/localnerve/storefront-studio/internal/preview"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/tui"
)

// Preview session choices. Tab, profile and pin choices carry a suffix
// after the colon.
const (
	PreviewTab      = "tab:"
	PreviewProfile  = "profile:"
	PreviewPin      = "pin:"
	PreviewExplore  = "explore"
	PreviewAdd      = "add"
	PreviewOpenCart = "cart"
	PreviewClear    = "clear"
	PreviewCheckout = "checkout"
	PreviewUnpin    = "unpin"
	PreviewBack     = "back"
)

// PreviewSession is the simulated phone of one editing session. It keeps a
// single navigation machine, so screen and cart survive between visits, and
// follows the editor store so each frame shows the latest document.
type PreviewSession struct {
	mu          sync.Mutex
	doc         storefront.Document
	nav         *navstate.Machine
	unsubscribe func()
}

func NewPreviewSession(store *editor.Store) *PreviewSession {
	p := &PreviewSession{doc: store.Snapshot(), nav: navstate.New()}
	p.unsubscribe = store.Subscribe(func(doc storefront.Document) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.doc = doc
	})
	return p
}

// Close stops following the store.
func (p *PreviewSession) Close() {
	p.unsubscribe()
}

// Frame renders the current document on the current screen.
func (p *PreviewSession) Frame() preview.Tree {
	p.mu.Lock()
	defer p.mu.Unlock()
	return preview.Render(p.doc, p.nav.State())
}

// Choices lists what the user can tap on the screen being shown.
func (p *PreviewSession) Choices() []tui.Choice {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []tui.Choice
	for _, t := range p.doc.Navigation {
		out = append(out, tui.Choice{Label: "Tab: " + t.Label, Value: PreviewTab + t.ID})
	}
	out = append(out, tui.Choice{Label: "Cart icon", Value: PreviewOpenCart})

	_, hasProduct := p.doc.FirstProduct()
	switch p.nav.Current() {
	case storefront.ScreenHome:
		out = append(out, tui.Choice{Label: "Explore", Value: PreviewExplore})
		if hasProduct {
			out = append(out, tui.Choice{Label: "Add to cart", Value: PreviewAdd})
		}
	case storefront.ScreenCategories:
		if hasProduct {
			out = append(out, tui.Choice{Label: "Add to cart", Value: PreviewAdd})
		}
	case storefront.ScreenCart:
		if p.nav.CanCheckout() {
			out = append(out,
				tui.Choice{Label: "Confirm Checkout", Value: PreviewCheckout},
				tui.Choice{Label: "Clear cart", Value: PreviewClear},
			)
		}
	case storefront.ScreenProfile:
		for _, e := range navstate.ProfileEntries {
			out = append(out, tui.Choice{Label: string(e), Value: PreviewProfile + string(e)})
		}
	}

	if p.nav.Forced() {
		out = append(out, tui.Choice{Label: "Unpin screen", Value: PreviewUnpin})
	} else {
		out = append(out, tui.Choice{Label: "Pin a screen", Value: PreviewPin})
	}
	return append(out, tui.Choice{Label: "Back to editor", Value: PreviewBack})
}

// Apply performs one choice. note is a message for inert taps; done is true
// for PreviewBack.
func (p *PreviewSession) Apply(choice string) (note string, done bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case choice == PreviewBack:
		return "", true, nil
	case strings.HasPrefix(choice, PreviewTab):
		id := strings.TrimPrefix(choice, PreviewTab)
		for _, t := range p.doc.Navigation {
			if t.ID == id {
				return "", false, p.nav.TapTab(t)
			}
		}
		return "", false, fmt.Errorf("tab %s is not enabled", id)
	case strings.HasPrefix(choice, PreviewProfile):
		entry := navstate.ProfileEntry(strings.TrimPrefix(choice, PreviewProfile))
		if !p.nav.SelectProfileEntry(entry) {
			return string(entry) + " is not available in the preview.", false, nil
		}
	case strings.HasPrefix(choice, PreviewPin):
		return "", false, p.nav.Force(storefront.Screen(strings.TrimPrefix(choice, PreviewPin)))
	case choice == PreviewUnpin:
		p.nav.ClearForce()
	case choice == PreviewExplore:
		p.nav.Explore()
	case choice == PreviewOpenCart:
		p.nav.OpenCart()
	case choice == PreviewAdd:
		p.nav.AddToCart()
	case choice == PreviewClear:
		p.nav.ClearCart()
	case choice == PreviewCheckout:
		if !p.nav.CanCheckout() {
			return "Your cart is empty.", false, nil
		}
		return "Checkout is not simulated in the preview.", false, nil
	default:
		return "", false, fmt.Errorf("unknown preview action %q", choice)
	}
	return "", false, nil
}
