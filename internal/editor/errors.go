// errors.go
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

import "errors"

var (
	// ErrNotFound is returned when a collection, product, offer or tab id is unknown.
	ErrNotFound = errors.New("not found")
	// ErrDeclined is returned when the user declines a destructive action.
	ErrDeclined = errors.New("action declined")
	// ErrRequestInFlight rejects a duplicate submission while the same remote request is pending.
	ErrRequestInFlight = errors.New("request already in flight")
)

// Confirmer gates destructive actions. It is called synchronously before the
// mutation runs; returning false leaves the document untouched.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Always confirms every prompt. A nil Confirmer behaves the same way.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

const (
	promptDeleteCollection = "Are you sure you want to delete this collection and all its products?"
	promptDeleteProduct    = "Are you sure you want to delete this product?"
	promptDeleteOffer      = "Delete this campaign?"
)

func confirmed(c Confirmer, prompt string) bool {
	if c == nil {
		return true
	}
	return c.Confirm(prompt)
}
