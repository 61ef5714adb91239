package database

import (
	"datarequests/internal/shared/config"
)

// MemoryConfig describes a private in-memory SQLite database. Used by tests
// and by the `--memory` server flag for throwaway instances.
func MemoryConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:            config.DriverSQLite,
		Path:              ":memory:",
		MigrationStrategy: "auto",
	}
}
