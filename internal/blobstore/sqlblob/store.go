// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlblob

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore"
	"github.com/paradisesecurity/secrets-manager/internal/obslog"
	"github.com/paradisesecurity/secrets-manager/internal/utils"
	"github.com/paradisesecurity/secrets-manager/models"
)

// Store is a [blobstore.Store] backed by a relational "blobs" table, one
// row per (connection, path).
type Store struct {
	db      *sql.DB
	dialect Dialect
	ids     *utils.UUIDGenerator
	logger  *obslog.Logger
}

// New constructs a Store over an already-open, already-migrated database
// connection.
func New(db *sql.DB, dialect Dialect, logger *obslog.Logger) *Store {
	return &Store{db: db, dialect: dialect, ids: utils.NewUUIDGenerator(), logger: logger}
}

var _ blobstore.Store = (*Store)(nil)

func (s *Store) qb() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(placeholderFormat(s.dialect))
}

// Has implements [blobstore.Store].
func (s *Store) Has(ctx context.Context, connection models.Connection, path string) (bool, error) {
	query, args, err := s.existsQuery(string(connection), path)
	if err != nil {
		return false, err
	}
	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

// Read implements [blobstore.Store].
func (s *Store) Read(ctx context.Context, connection models.Connection, path string) ([]byte, error) {
	query, args, err := s.selectDataQuery(string(connection), path)
	if err != nil {
		return nil, err
	}
	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", blobstore.ErrNotFound, connection, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return data, nil
}

// Open implements [blobstore.Store].
func (s *Store) Open(ctx context.Context, connection models.Connection, path string) (io.ReadCloser, error) {
	data, err := s.Read(ctx, connection, path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Write implements [blobstore.Store].
func (s *Store) Write(ctx context.Context, connection models.Connection, path string, data []byte, visibility models.Visibility) error {
	id := s.ids.Generate()
	query, args, buildErr := s.upsertQuery(id, string(connection), path, data, int(visibility))
	if buildErr != nil {
		return buildErr
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return classifyWrite(err)
	}
	return nil
}

// WriteStream implements [blobstore.Store].
func (s *Store) WriteStream(ctx context.Context, connection models.Connection, path string, r io.Reader, visibility models.Visibility) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: reading stream: %w", blobstore.ErrWriteFailed, err)
	}
	return s.Write(ctx, connection, path, data, visibility)
}

// Delete implements [blobstore.Store].
func (s *Store) Delete(ctx context.Context, connection models.Connection, path string) error {
	query, args, err := s.deleteQuery(string(connection), path)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Mkdir implements [blobstore.Store]. The relational backend has no native
// directory concept, so Mkdir records a zero-length marker blob at path;
// it is absent is equivalent to "the vault subpath has never been touched".
func (s *Store) Mkdir(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error {
	exists, err := s.Has(ctx, connection, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s/%s", blobstore.ErrAlreadyExists, connection, path)
	}
	return s.Write(ctx, connection, path, []byte{}, visibility)
}

// SetVisibility implements [blobstore.Store].
func (s *Store) SetVisibility(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error {
	exists, err := s.Has(ctx, connection, path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s/%s", blobstore.ErrNotFound, connection, path)
	}
	query, args, err := s.updateVisibilityQuery(string(connection), path, int(visibility))
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// classifyWrite wraps a failed INSERT/UPDATE with [blobstore.ErrWriteFailed],
// annotating PostgreSQL unique/constraint violations by code.
func classifyWrite(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.IntegrityConstraintViolation:
			return fmt.Errorf("%w: constraint violation: %w", blobstore.ErrWriteFailed, err)
		}
	}
	return fmt.Errorf("%w: %w", blobstore.ErrWriteFailed, err)
}
