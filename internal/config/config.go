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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the persistence server configuration
type Config struct {
	// Server configuration
	Port     string
	LogLevel string

	// Database configuration
	DBType            string // mysql, mariadb, postgres, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
}

// StudioConfig holds the studio CLI configuration
type StudioConfig struct {
	APIURL        string
	SessionPath   string
	ExportDir     string
	BuildInterval time.Duration
	GenAIAPIKey   string
	GenAIModel    string
	LogLevel      string
}

var supportedDBTypes = map[string]bool{
	"mysql":      true,
	"mariadb":    true,
	"postgres":   true,
	"postgresql": true,
	"sqlite":     true,
	"sqlserver":  true,
	"mssql":      true,
}

// LoadEnvFile loads variables from a .env file without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load loads server configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5001"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBType:            strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", "storefront.db"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
	}

	// Validate required fields
	if !supportedDBTypes[cfg.DBType] {
		return nil, fmt.Errorf("unsupported DB_TYPE: %s", cfg.DBType)
	}
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}
	if cfg.DBConnectionLimit < 1 {
		return nil, fmt.Errorf("DB_CONNECTION_LIMIT must be positive")
	}

	return cfg, nil
}

// LoadStudio loads the studio configuration. Every key has a usable default;
// an empty GENAI_API_KEY disables advice.
func LoadStudio() (*StudioConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg := &StudioConfig{
		APIURL:        strings.TrimRight(getEnv("STUDIO_API_URL", "http://localhost:5001/api"), "/"),
		SessionPath:   getEnv("STUDIO_SESSION_PATH", home+"/.storefront-studio/session.db"),
		ExportDir:     getEnv("STUDIO_EXPORT_DIR", "."),
		BuildInterval: getEnvAsDuration("STUDIO_BUILD_INTERVAL", 400*time.Millisecond),
		GenAIAPIKey:   getEnv("GENAI_API_KEY", ""),
		GenAIModel:    getEnv("GENAI_MODEL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
	}

	if cfg.BuildInterval <= 0 {
		return nil, fmt.Errorf("STUDIO_BUILD_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts a Go duration ("250ms") or a bare millisecond count.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
