// Package database opens the relational store behind the credential and
// note repositories and keeps its schema current with embedded goose
// migrations. PostgreSQL (pgx) and SQLite are supported.
package database

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/Ifrah-c/personal-note-app/internal/config"
	"github.com/Ifrah-c/personal-note-app/internal/logger"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

// Open connects to the database and verifies the connection.
// SQLite gets a single connection: it allows one writer at a time and an
// in-memory database exists only inside the connection that created it.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate applies every pending migration for the given driver.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	dialect, dir, err := migrationSet(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func migrationSet(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case config.DriverSQLite:
		return "sqlite3", "migrations/sqlite3", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// gooseLogger routes goose output to the service logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logger.Log.Infof(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Log.Fatalf(format, v...)
}
