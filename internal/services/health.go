// health.go
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
	"fmt"
	"time"

	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/localnerve/storefront-studio/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck reports whether the database host is reachable and answers a ping.
func HealthCheck(cfg *config.Config, db *gorm.DB, log *zap.Logger) HealthCheckResult {
	if log == nil {
		log = zap.NewNop()
	}
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	fail := func(state, key string, err error) {
		result.Status = "unhealthy"
		result.Database = state
		result.Details[key] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database %s: %v", state, err)
		log.Warn("health check failed", zap.String("database", state), zap.Error(err))
	}

	if addr, ok := utils.DatabaseAddress(cfg.DBType, cfg.DBHost, cfg.DBPort); ok {
		if err := utils.Dial(addr, 1500*time.Millisecond); err != nil {
			fail("unreachable", "database_host_error", err)
			return result
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		fail("error", "database_error", err)
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		fail("unreachable", "database_ping_error", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType
	result.Details["database_name"] = cfg.DBDatabase
	log.Debug("health check passed")

	return result
}
