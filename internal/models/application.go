// application.go
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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreConfig is the published storefront document of one account.
// Version counts publishes; writes are last-write-wins.
type StoreConfig struct {
	ConfigID  uint64        `gorm:"primaryKey;autoIncrement"`
	UserID    string        `gorm:"uniqueIndex;size:64;not null"`
	Document  StoreDocument `gorm:"not null"`
	Version   uint64        `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatalogCollection is a server-side collection record. Its id is handed to
// the studio when the collection is created.
type CatalogCollection struct {
	CollectionID string `gorm:"primaryKey;size:36"`
	AppID        string `gorm:"index;size:64;not null"`
	Name         string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Products     []CatalogProduct `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE;"`
}

// CatalogProduct belongs to one CatalogCollection.
type CatalogProduct struct {
	ProductID    string          `gorm:"primaryKey;size:36"`
	CollectionID string          `gorm:"index;size:36;not null"`
	Name         string          `gorm:"size:255;not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Image        string          `gorm:"size:1024"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for StoreConfig
func (StoreConfig) TableName() string {
	return "store_configs"
}

// TableName overrides the table name for CatalogCollection
func (CatalogCollection) TableName() string {
	return "catalog_collections"
}

// TableName overrides the table name for CatalogProduct
func (CatalogProduct) TableName() string {
	return "catalog_products"
}

// BeforeCreate assigns a uuid when the caller did not.
func (c *CatalogCollection) BeforeCreate(*gorm.DB) error {
	if c.CollectionID == "" {
		c.CollectionID = uuid.NewString()
	}
	return nil
}

func (p *CatalogProduct) BeforeCreate(*gorm.DB) error {
	if p.ProductID == "" {
		p.ProductID = uuid.NewString()
	}
	return nil
}
