// promotions.go
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
	"github.com/oklog/ulid/v2"
)

// OfferFields is the editable part of an offer.
type OfferFields struct {
	Title       string
	Discount    string
	Code        string
	Description string
}

func (f OfferFields) validate() error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return storefront.Required("offer.title")
	case strings.TrimSpace(f.Discount) == "":
		return storefront.Required("offer.discount")
	case strings.TrimSpace(f.Code) == "":
		return storefront.Required("offer.code")
	}
	return nil
}

// offer stamps the color from the primary at save time; later palette
// changes do not touch existing offers.
func (f OfferFields) offer(id, color string) storefront.Offer {
	return storefront.Offer{
		ID:          id,
		Title:       strings.TrimSpace(f.Title),
		Discount:    strings.TrimSpace(f.Discount),
		Code:        strings.TrimSpace(f.Code),
		Description: strings.TrimSpace(f.Description),
		Color:       color,
	}
}

func newOfferID() string {
	return "o_" + ulid.Make().String()
}

// CreateOffer appends a new offer. Offers are local until published.
func CreateOffer(doc storefront.Document, fields OfferFields) (storefront.Document, string, error) {
	if err := fields.validate(); err != nil {
		return doc, "", err
	}
	id := newOfferID()
	out := doc.Clone()
	out.Offers = append(out.Offers, fields.offer(id, doc.Theme.Primary))
	return out, id, nil
}

// UpdateOffer replaces an offer's fields and re-stamps its color.
func UpdateOffer(doc storefront.Document, id string, fields OfferFields) (storefront.Document, error) {
	if err := fields.validate(); err != nil {
		return doc, err
	}
	i := offerIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("offer %s: %w", id, ErrNotFound)
	}
	out := doc.Clone()
	out.Offers[i] = fields.offer(id, doc.Theme.Primary)
	return out, nil
}

// DeleteOffer removes an offer after confirmation.
func DeleteOffer(doc storefront.Document, id string, confirm Confirmer) (storefront.Document, error) {
	i := offerIndex(doc, id)
	if i < 0 {
		return doc, fmt.Errorf("offer %s: %w", id, ErrNotFound)
	}
	if !confirmed(confirm, promptDeleteOffer) {
		return doc, ErrDeclined
	}
	out := doc.Clone()
	out.Offers = append(out.Offers[:i], out.Offers[i+1:]...)
	return out, nil
}

func offerIndex(doc storefront.Document, id string) int {
	for i, o := range doc.Offers {
		if o.ID == id {
			return i
		}
	}
	return -1
}
