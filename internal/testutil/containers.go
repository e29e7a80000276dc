// containers.go
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

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/storefront-studio/data"
	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Names baked into data/initdb/mariadb/002-ddl-privileges.sql.
const (
	DefaultMariaDBImage = "mariadb:11.4"
	MariaDBDatabase     = "storefront"
	MariaDBUser         = "studio"
	MariaDBPassword     = "studio-pass"
	mariaDBRootPassword = "root-pass"
	mariaDBPort         = "3306"
)

// MariaDB is a running, initialized database container.
type MariaDB struct {
	Container testcontainers.Container
	// Config connects the service account through the mapped port.
	Config *config.Config
}

// Terminate stops and removes the container.
func (m *MariaDB) Terminate(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

// StartMariaDB runs DB_IMAGE (or DefaultMariaDBImage), waits until it accepts
// connections and applies the embedded init scripts. logf may be nil.
func StartMariaDB(ctx context.Context, logf func(format string, args ...any)) (*MariaDB, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = DefaultMariaDBImage
	}

	tcpPort, err := nat.NewPort("tcp", mariaDBPort)
	if err != nil {
		return nil, fmt.Errorf("db port: %w", err)
	}

	// DB_HOST_PORT pins the published port so a local server can keep one .env
	hostPort := os.Getenv("DB_HOST_PORT")
	hostConfigModifier := func(hostConfig *container.HostConfig) {
		hostConfig.Tmpfs = map[string]string{"/var/lib/mysql": "rw"}
		if hostPort != "" {
			hostConfig.PortBindings = nat.PortMap{
				tcpPort: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: hostPort}},
			}
		}
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mariaDBRootPassword,
				"MYSQL_DATABASE":      MariaDBDatabase,
			},
			HostConfigModifier: hostConfigModifier,
			WaitingFor:         wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start mariadb: %w", err)
	}
	m := &MariaDB{Container: ctr}

	host, err := ctr.Host(ctx)
	if err != nil {
		_ = m.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	mapped, err := ctr.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = m.Terminate(ctx)
		return nil, fmt.Errorf("mapped port: %w", err)
	}

	if err := initMariaDB(ctx, host, mapped); err != nil {
		_ = m.Terminate(ctx)
		return nil, err
	}
	logf("DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=%s", host, mapped.Port(), MariaDBDatabase, MariaDBUser)

	m.Config = &config.Config{
		Port:              "0",
		LogLevel:          "warn",
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        MariaDBDatabase,
		DBUser:            MariaDBUser,
		DBPassword:        MariaDBPassword,
		DBConnectionLimit: 5,
	}
	return m, nil
}

func initMariaDB(ctx context.Context, host string, port nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/%s", mariaDBRootPassword, host, port.Port(), MariaDBDatabase))
	if err != nil {
		return fmt.Errorf("connect to mariadb for setup: %w", err)
	}
	defer db.Close()

	// The port can listen before the server accepts logins
	for i := 0; i < 30; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return fmt.Errorf("mariadb not ready after 30 seconds: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", MariaDBUser, MariaDBPassword)); err != nil {
		return fmt.Errorf("create user %s: %w", MariaDBUser, err)
	}
	if err := ExecuteSQL(ctx, db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("tables init sql: %w", err)
	}
	if err := ExecuteSQL(ctx, db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("privileges init sql: %w", err)
	}
	return nil
}

// ExecuteSQL runs a script statement by statement. "--" comments outside
// quotes are dropped; statements end at ";".
func ExecuteSQL(ctx context.Context, db *sql.DB, script string) error {
	for _, q := range SplitStatements(script) {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	return nil
}

// SplitStatements strips comments and splits a script on semicolons outside quotes.
func SplitStatements(script string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			r := runes[i]
			switch {
			case quote != 0:
				if r == quote {
					quote = 0
				}
				cur.WriteRune(r)
			case r == '\'' || r == '"' || r == '`':
				quote = r
				cur.WriteRune(r)
			case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
				i = len(runes)
			case r == ';':
				flush()
			default:
				cur.WriteRune(r)
			}
		}
		cur.WriteRune('\n')
	}
	flush()
	return out
}
