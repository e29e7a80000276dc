// session.go
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

// Package session caches the logged-in account on the local machine so the
// studio restores it on the next launch.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/storefront-studio/internal/client"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Key is the fixed entry holding the current account.
const Key = "linkora_client"

type entry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "session_entries"
}

// Store is a small key/value table in a local sqlite file.
type Store struct {
	db *gorm.DB
}

// Open creates or opens the session file at path. ":memory:" keeps it in memory.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate session store: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the cached account.
func (s *Store) Save(u client.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	e := entry{Key: Key, Value: datatypes.JSON(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

// Load returns the cached account. ok is false when nobody is logged in or
// the stored record cannot be read.
func (s *Store) Load() (u client.User, ok bool, err error) {
	var e entry
	err = s.db.First(&e, "entry_key = ?", Key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return client.User{}, false, nil
	}
	if err != nil {
		return client.User{}, false, err
	}
	if err := json.Unmarshal(e.Value, &u); err != nil {
		return client.User{}, false, nil
	}
	return u, u.ID != "", nil
}

// Clear logs the account out.
func (s *Store) Clear() error {
	return s.db.Where("entry_key = ?", Key).Delete(&entry{}).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
