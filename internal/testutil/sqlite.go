// sqlite.go
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

// Package testutil provides databases for tests: a throwaway sqlite file for
// unit tests and MariaDB containers for integration runs.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/localnerve/storefront-studio/internal/database"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// SQLiteConfig points at a fresh database file under t.TempDir().
func SQLiteConfig(t testing.TB) *config.Config {
	t.Helper()
	return &config.Config{
		Port:              "0",
		LogLevel:          "warn",
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "test.db"),
		DBConnectionLimit: 1,
	}
}

// NewSQLiteDB connects and migrates a fresh sqlite database, closed on cleanup.
func NewSQLiteDB(t testing.TB) (*gorm.DB, *config.Config) {
	t.Helper()
	cfg := SQLiteConfig(t)
	db, err := database.Connect(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db, cfg
}
