package db

import (
	"errors"
	"fmt"
	"os"

	"github.com/diewo77/bakery-app/internal/config"
	"github.com/diewo77/bakery-app/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the database drivers and file
	// source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndMigrate opens the database selected by the DSN and brings the
// schema up to date. With MIGRATIONS=1 the SQL files in ./migrations run via
// golang-migrate; otherwise AutoMigrate keeps development databases in sync.
// DB_SEED=1 additionally loads the sample bakery data.
func ConnectAndMigrate(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	conn, err := gorm.Open(Dialector(dsn), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Basic connectivity test
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if config.ParseBool("MIGRATIONS", false) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range []any{&models.Category{}, &models.Product{}, &models.Customer{}} {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	// sanity check: ensure required tables exist
	for _, table := range []string{"categories", "products", "customers"} {
		if !conn.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}

	if config.ParseBool("DB_SEED", false) {
		if err := Seed(conn); err != nil {
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}
	return conn, nil
}

// runSQLMigrations executes the files in ./migrations using the file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", migrateURL(dsn))
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// migrateURL converts the gorm DSN into the URL form golang-migrate expects.
// Postgres URLs pass through unchanged; sqlite paths get the sqlite3 scheme.
func migrateURL(dsn string) string {
	if IsPostgres(dsn) {
		return dsn
	}
	return "sqlite3://" + dsn
}
