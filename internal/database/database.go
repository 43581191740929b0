// Package database opens the click store and applies its schema.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// OpenDB opens a connection pool for driver ("sqlite" or "postgres").
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite:
		return openSQLite(dsn)
	case DriverPostgres:
		return openPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps :memory:
	// databases alive across queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

func openPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// RunMigrations applies all pending migrations for the database's dialect.
func RunMigrations(db *sqlx.DB) error {
	driver := DriverName(db)

	sourceDriver, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := newMigrate(db.DB, driver, sourceDriver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func newMigrate(db *sql.DB, driver string, src source.Driver) (*migrate.Migrate, error) {
	var (
		m   *migrate.Migrate
		err error
	)

	switch driver {
	case DriverSQLite:
		dbDriver, derr := sqlite.WithInstance(db, &sqlite.Config{})
		if derr != nil {
			return nil, fmt.Errorf("failed to create database driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", dbDriver)
	case DriverPostgres:
		dbDriver, derr := migratepgx.WithInstance(db, &migratepgx.Config{})
		if derr != nil {
			return nil, fmt.Errorf("failed to create database driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "pgx5", dbDriver)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// DriverName maps the sqlx driver name to the dialect name used here.
func DriverName(db *sqlx.DB) string {
	if db.DriverName() == "pgx" {
		return DriverPostgres
	}
	return DriverSQLite
}
