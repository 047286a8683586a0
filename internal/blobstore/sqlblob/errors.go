// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlblob

import "errors"

var (
	// ErrExecutingQuery is returned when a SELECT-shaped query fails.
	ErrExecutingQuery = errors.New("sqlblob: error executing query")

	// ErrExecutingStatement is returned when an INSERT/UPDATE/DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("sqlblob: error executing statement")

	// ErrBuildingQuery is returned when squirrel fails to render SQL from
	// a query builder.
	ErrBuildingQuery = errors.New("sqlblob: error building sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("sqlblob: error scanning row")

	// ErrUnsupportedDialect is returned by Open for any dialect value
	// other than [DialectPostgres] or [DialectSQLite].
	ErrUnsupportedDialect = errors.New("sqlblob: unsupported dialect")
)
