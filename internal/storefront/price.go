// price.go
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

package storefront

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice keeps only digits and dots from free text and reads the longest
// numeric prefix. Unparseable input yields zero.
func ParsePrice(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	end, seenDot, digits := 0, false, 0
	for end < len(cleaned) {
		c := cleaned[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else {
			digits++
		}
		end++
	}
	if digits == 0 {
		return decimal.Zero
	}

	f, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// FormatPrice renders a price the way the catalog stores it, e.g. "$1299.99".
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.String()
}

// NormalizePrice is FormatPrice(ParsePrice(raw)).
func NormalizePrice(raw string) string {
	return FormatPrice(ParsePrice(raw))
}
