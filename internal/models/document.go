// document.go
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
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ErrNotObject rejects documents whose top level is not a JSON object.
var ErrNotObject = errors.New("document must be a JSON object")

// StoreDocument is the column holding a published storefront document.
// Bytes are stored as received so a fetch returns exactly what was published.
type StoreDocument struct {
	datatypes.JSON
}

// NewStoreDocument wraps raw for storage after checking it is an object.
func NewStoreDocument(raw json.RawMessage) (StoreDocument, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return StoreDocument{}, ErrNotObject
	}
	return StoreDocument{JSON: datatypes.JSON(raw)}, nil
}

// Raw returns the stored bytes.
func (d StoreDocument) Raw() json.RawMessage {
	return json.RawMessage(d.JSON)
}

// GormDBDataType overrides datatypes.JSON because sqlserver has no json column.
func (StoreDocument) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "sqlserver":
		return "NVARCHAR(MAX)"
	case "mysql", "sqlite":
		return "JSON"
	default:
		return "TEXT"
	}
}
