// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlblob

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/paradisesecurity/secrets-manager/internal/obslog"
)

// Dialect selects the SQL placeholder style and driver used to open a
// connection.
type Dialect string

const (
	// DialectPostgres connects through the pgx stdlib driver and renders
	// queries with $N placeholders.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite connects through the mattn/go-sqlite3 driver and
	// renders queries with ? placeholders, creating the database file if
	// it does not yet exist.
	DialectSQLite Dialect = "sqlite"
)

func placeholderFormat(dialect Dialect) sq.PlaceholderFormat {
	if dialect == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// Open connects to dsn using the given dialect and verifies reachability
// with a ping. It does not create or migrate the blobs table; callers run
// migrations.Migrate first.
//
// For [DialectSQLite], dsn is treated as a filesystem path and the file is
// created if missing.
func Open(ctx context.Context, dialect Dialect, dsn string, log *obslog.Logger) (*sql.DB, error) {
	var driverName string
	switch dialect {
	case DialectPostgres:
		driverName = "pgx"
	case DialectSQLite:
		driverName = "sqlite3"
		if err := createSQLiteFileIfNotExists(dsn); err != nil {
			return nil, fmt.Errorf("sqlblob: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlblob: opening %s connection: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("sqlblob: pinging %s connection: %w", dialect, err)
	}
	log.Debug().Str("dialect", string(dialect)).Msg("connected to blob store database")

	return db, nil
}

func createSQLiteFileIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating sqlite file %s: %w", path, err)
		}
		return f.Close()
	}
	return nil
}

// Schema lives under migrations/ (see migrations.Migrate) rather than
// being created ad hoc here, so the blobs table goes through the same
// goose-tracked migration history as every other table.
