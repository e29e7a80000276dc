// ping.go
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

package utils

import (
	"fmt"
	"net"
	"time"
)

// defaultDBPorts are used when DB_PORT is empty.
var defaultDBPorts = map[string]string{
	"mysql":      "3306",
	"mariadb":    "3306",
	"postgres":   "5432",
	"postgresql": "5432",
	"sqlserver":  "1433",
	"mssql":      "1433",
}

// DatabaseAddress returns host:port for a database server. ok is false for
// file databases, which have nothing to dial.
func DatabaseAddress(dbType, host, port string) (addr string, ok bool) {
	def, known := defaultDBPorts[dbType]
	if !known {
		return "", false
	}
	if port == "" {
		port = def
	}
	if host == "" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port), true
}

// Dial reports whether a TCP listener accepts a connection at addr within timeout.
func Dial(addr string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return conn.Close()
}
