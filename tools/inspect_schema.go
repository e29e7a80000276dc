// inspect_schema.go
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

// inspect_schema migrates the server models into an in-memory sqlite
// database and lists each table with its columns. Tables missing from the
// embedded MariaDB init script are flagged so the two stay in step.
//
// Run with: go run ./tools
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/localnerve/storefront-studio/data"
	"github.com/localnerve/storefront-studio/internal/database"
	"github.com/localnerve/storefront-studio/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		log.Fatal(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	missing := 0
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			log.Fatal(err)
		}
		table := stmt.Schema.Table

		mark := ""
		if !strings.Contains(data.InitdbMariaDBTables, "CREATE TABLE IF NOT EXISTS "+table) {
			mark = "  (missing from mariadb init script)"
			missing++
		}
		fmt.Printf("\n=== %s%s ===\n", table, mark)

		cols, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			log.Fatal(err)
		}
		for _, c := range cols {
			nullable, _ := c.Nullable()
			fmt.Printf("  %-16s %-14s null=%t\n", c.Name(), c.DatabaseTypeName(), nullable)
		}
	}

	if missing > 0 {
		log.Fatalf("%d tables missing from data/initdb/mariadb/001-ddl-tables.sql", missing)
	}
}
