package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NormalizeDSN trims quotes and whitespace around a DSN so values copied from
// compose files or .env entries work unchanged.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	return strings.Trim(s, "\"'")
}

// IsPostgres reports whether the DSN selects the postgres driver. Anything
// that is not a postgres URL is treated as a sqlite database path.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// Dialector picks the gorm driver matching the DSN shape.
func Dialector(dsn string) gorm.Dialector {
	if IsPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
