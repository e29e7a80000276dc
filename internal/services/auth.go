// auth.go
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
	"net/mail"
	"strings"

	"github.com/localnerve/storefront-studio/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is lowered in tests.
var bcryptCost = bcrypt.DefaultCost

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account. A taken email yields ErrConflict.
func Signup(db *gorm.DB, name, email, password string) (models.ClientAccount, error) {
	name = sanitizeText(name)
	email = normalizeEmail(email)
	if name == "" || password == "" {
		return models.ClientAccount{}, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.ClientAccount{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.ClientAccount{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.ClientAccount{Name: name, Email: email, PasswordHash: string(hash)}
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ClientAccount{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		return models.ClientAccount{}, err
	}
	return account, nil
}

// Login checks credentials. Unknown email and wrong password are not distinguished.
func Login(db *gorm.DB, email, password string) (models.ClientAccount, error) {
	var account models.ClientAccount
	err := db.Where("email = ?", normalizeEmail(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ClientAccount{}, ErrInvalidCredentials
		}
		return models.ClientAccount{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return models.ClientAccount{}, ErrInvalidCredentials
	}
	return account, nil
}
