// flex.go
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

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexList decodes either a JSON array or a single value into a slice.
// Array elements that do not decode as T are skipped.
type FlexList[T any] []T

func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	items, _, err := DecodeFlexList[T](data)
	if err != nil {
		return err
	}
	*f = FlexList[T](items)
	return nil
}

func (f FlexList[T]) Slice() []T {
	return []T(f)
}

// DecodeFlexList is the lenient decoder behind FlexList. It also reports how
// many array elements were dropped.
func DecodeFlexList[T any](data []byte) ([]T, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, 0, nil
	}

	if data[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, 0, err
		}
		items := make([]T, 0, len(raws))
		dropped := 0
		for _, raw := range raws {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				dropped++
				continue
			}
			items = append(items, item)
		}
		return items, dropped, nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, 0, err
	}
	return []T{item}, 0, nil
}

// FlexString accepts a JSON string or number. Backends disagree on whether
// ids and prices are numeric, so request bodies use this for both.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	return fmt.Errorf("FlexString: expected string or number, got %s", string(data))
}

func (f FlexString) String() string {
	return string(f)
}
