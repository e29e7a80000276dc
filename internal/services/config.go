// config.go
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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/storefront-studio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
	"gorm.io/gorm/logger"
)

// GetConfig returns the stored document for userID exactly as it was published.
func GetConfig(db *gorm.DB, userID string) (json.RawMessage, error) {
	var rec models.StoreConfig
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.Comment("select", "storefront:get_config")).
		Where("user_id = ?", userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Document.Raw(), nil
}

// UpsertConfig stores document for userID and returns the new version.
// The last write wins; the version is informational.
func UpsertConfig(db *gorm.DB, userID string, document json.RawMessage) (uint64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	value, err := models.NewStoreDocument(document)
	if err != nil {
		return 0, fmt.Errorf("%w: config must be a JSON object", ErrInvalidInput)
	}

	var newVersion uint64
	err = db.Transaction(func(tx *gorm.DB) error {
		var rec models.StoreConfig
		err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}, hints.Comment("select", "storefront:upsert_config")).
			Where("user_id = ?", userID).
			First(&rec).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			newVersion = 1
			return tx.Create(&models.StoreConfig{UserID: userID, Document: value, Version: newVersion}).Error
		case err != nil:
			return err
		}

		newVersion = rec.Version + 1
		return tx.Model(&rec).Updates(map[string]any{
			"document": value,
			"version":  newVersion,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}
