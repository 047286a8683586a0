// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sqlblob implements [blobstore.Store] on top of a relational
// table, one row per (connection, path). It is used for the VAULT
// connection, where secret records benefit from transactional writes and
// indexed lookup by vault name; KEYRING/CHECKSUM/MASTER_KEYS/ENVIRONMENT
// use [localfs] instead.
//
// Two dialects are supported through database/sql: PostgreSQL via
// github.com/jackc/pgx/v5/stdlib, and SQLite via github.com/mattn/go-sqlite3
// for local or offline deployments. Query construction uses
// github.com/Masterminds/squirrel so the same builder code produces both
// dialects' placeholder styles; PostgreSQL-specific constraint violations
// are classified with github.com/jackc/pgerrcode.
package sqlblob
