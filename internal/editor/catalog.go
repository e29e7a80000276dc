// catalog.go
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

// Package editor holds the catalog, promotion and style operations that
// mutate a storefront document, and the Store that owns the live copy.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/storefront-studio/internal/storefront"
)

// IDAllocator issues server-side identifiers for new catalog entries.
type IDAllocator interface {
	CreateCollection(ctx context.Context, appID, name string) (string, error)
	CreateProduct(ctx context.Context, collectionID string, p storefront.Product) (string, error)
}

// ProductFields is the editable part of a product. Price is free text.
type ProductFields struct {
	Name        string
	Description string
	Price       string
	Image       string
}

func (f ProductFields) product(id string) storefront.Product {
	return storefront.Product{
		ID:          id,
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       storefront.NormalizePrice(f.Price),
		Image:       strings.TrimSpace(f.Image),
	}
}

func (f ProductFields) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return storefront.Required("product.name")
	}
	return nil
}

func validateCollectionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", storefront.Required("collection.name")
	}
	return name, nil
}

// CreateCollection asks ids for a remote identifier and appends an empty
// collection. Nothing is added when the remote call fails.
func CreateCollection(ctx context.Context, doc storefront.Document, name string, ids IDAllocator) (storefront.Document, string, error) {
	name, err := validateCollectionName(name)
	if err != nil {
		return doc, "", err
	}
	id, err := ids.CreateCollection(ctx, doc.ID, name)
	if err != nil {
		return doc, "", fmt.Errorf("create collection: %w", err)
	}
	return appendCollection(doc, id, name), id, nil
}

func appendCollection(doc storefront.Document, id, name string) storefront.Document {
	out := doc.Clone()
	out.Collections = append(out.Collections, storefront.Collection{ID: id, Name: name, Products: []storefront.Product{}})
	return out
}

// RenameCollection is a local update.
func RenameCollection(doc storefront.Document, id, name string) (storefront.Document, error) {
	name, err := validateCollectionName(name)
	if err != nil {
		return doc, err
	}
	i := doc.CollectionIndex(id)
	if i < 0 {
		return doc, fmt.Errorf("collection %s: %w", id, ErrNotFound)
	}
	out := doc.Clone()
	out.Collections[i].Name = name
	return out, nil
}

// DeleteCollection removes a collection and every product in it.
func DeleteCollection(doc storefront.Document, id string, confirm Confirmer) (storefront.Document, error) {
	i := doc.CollectionIndex(id)
	if i < 0 {
		return doc, fmt.Errorf("collection %s: %w", id, ErrNotFound)
	}
	if !confirmed(confirm, promptDeleteCollection) {
		return doc, ErrDeclined
	}
	out := doc.Clone()
	out.Collections = append(out.Collections[:i], out.Collections[i+1:]...)
	return out, nil
}

// CreateProduct asks ids for a remote identifier and appends the product to
// the collection. The collection must exist before any request is made.
func CreateProduct(ctx context.Context, doc storefront.Document, collectionID string, fields ProductFields, ids IDAllocator) (storefront.Document, string, error) {
	if doc.CollectionIndex(collectionID) < 0 {
		return doc, "", fmt.Errorf("collection %s: %w", collectionID, ErrNotFound)
	}
	if err := fields.validate(); err != nil {
		return doc, "", err
	}
	id, err := ids.CreateProduct(ctx, collectionID, fields.product(""))
	if err != nil {
		return doc, "", fmt.Errorf("create product: %w", err)
	}
	out, err := appendProduct(doc, collectionID, fields.product(id))
	return out, id, err
}

func appendProduct(doc storefront.Document, collectionID string, p storefront.Product) (storefront.Document, error) {
	i := doc.CollectionIndex(collectionID)
	if i < 0 {
		return doc, fmt.Errorf("collection %s: %w", collectionID, ErrNotFound)
	}
	out := doc.Clone()
	out.Collections[i].Products = append(out.Collections[i].Products, p)
	return out, nil
}

// UpdateProduct edits a product in place. The change stays local until the
// whole document is published.
func UpdateProduct(doc storefront.Document, collectionID, productID string, fields ProductFields) (storefront.Document, error) {
	if err := fields.validate(); err != nil {
		return doc, err
	}
	ci, pi, err := productIndex(doc, collectionID, productID)
	if err != nil {
		return doc, err
	}
	out := doc.Clone()
	out.Collections[ci].Products[pi] = fields.product(productID)
	return out, nil
}

// DeleteProduct removes one product from a collection.
func DeleteProduct(doc storefront.Document, collectionID, productID string, confirm Confirmer) (storefront.Document, error) {
	ci, pi, err := productIndex(doc, collectionID, productID)
	if err != nil {
		return doc, err
	}
	if !confirmed(confirm, promptDeleteProduct) {
		return doc, ErrDeclined
	}
	out := doc.Clone()
	products := out.Collections[ci].Products
	out.Collections[ci].Products = append(products[:pi], products[pi+1:]...)
	return out, nil
}

func productIndex(doc storefront.Document, collectionID, productID string) (int, int, error) {
	ci := doc.CollectionIndex(collectionID)
	if ci < 0 {
		return -1, -1, fmt.Errorf("collection %s: %w", collectionID, ErrNotFound)
	}
	for pi, p := range doc.Collections[ci].Products {
		if p.ID == productID {
			return ci, pi, nil
		}
	}
	return -1, -1, fmt.Errorf("product %s: %w", productID, ErrNotFound)
}
