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

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/storefront-studio/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput is a product create request after decoding.
type ProductInput struct {
	CollectionID string
	Name         string
	Description  string
	Price        decimal.Decimal
	Image        string
}

// CreateCollection records a new collection for appID and returns it with its id.
func CreateCollection(db *gorm.DB, appID, name string) (models.CatalogCollection, error) {
	appID = strings.TrimSpace(appID)
	name = sanitizeText(name)
	if appID == "" || name == "" {
		return models.CatalogCollection{}, fmt.Errorf("%w: appId and name are required", ErrInvalidInput)
	}
	coll := models.CatalogCollection{AppID: appID, Name: name}
	if err := db.Create(&coll).Error; err != nil {
		return models.CatalogCollection{}, err
	}
	return coll, nil
}

// CreateProduct adds a product to an existing collection. An unknown
// collection yields ErrNotFound.
func CreateProduct(db *gorm.DB, in ProductInput) (models.CatalogProduct, error) {
	name := sanitizeText(in.Name)
	if name == "" {
		return models.CatalogProduct{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return models.CatalogProduct{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	prod := models.CatalogProduct{
		CollectionID: strings.TrimSpace(in.CollectionID),
		Name:         name,
		Description:  sanitizeText(in.Description),
		Price:        in.Price.Round(2),
		Image:        strings.TrimSpace(in.Image),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var coll models.CatalogCollection
		if err := tx.Select("collection_id").
			Where("collection_id = ?", prod.CollectionID).
			First(&coll).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Create(&prod).Error
	})
	if err != nil {
		return models.CatalogProduct{}, err
	}
	return prod, nil
}
