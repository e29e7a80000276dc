// user.go
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
	"gorm.io/gorm"
)

// ClientAccount is a studio login. The password is stored as a bcrypt hash.
type ClientAccount struct {
	AccountID    string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for ClientAccount
func (ClientAccount) TableName() string {
	return "client_accounts"
}

func (a *ClientAccount) BeforeCreate(*gorm.DB) error {
	if a.AccountID == "" {
		a.AccountID = uuid.NewString()
	}
	return nil
}

// All lists every model the server migrates.
func All() []any {
	return []any{
		&ClientAccount{},
		&StoreConfig{},
		&CatalogCollection{},
		&CatalogProduct{},
	}
}
