// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlblob

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const blobsTable = "blobs"

func (s *Store) selectDataQuery(connection, path string) (string, []any, error) {
	query, args, err := s.qb().Select("data").
		From(blobsTable).
		Where(sq.Eq{"connection": connection, "path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select data: %w", ErrBuildingQuery, err)
	}
	return query, args, nil
}

func (s *Store) existsQuery(connection, path string) (string, []any, error) {
	query, args, err := s.qb().Select("1").
		From(blobsTable).
		Where(sq.Eq{"connection": connection, "path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: exists: %w", ErrBuildingQuery, err)
	}
	return query, args, nil
}

func (s *Store) upsertQuery(id, connection, path string, data []byte, visibility int) (string, []any, error) {
	if s.dialect == DialectPostgres {
		query, args, err := s.qb().Insert(blobsTable).
			Columns("id", "connection", "path", "data", "visibility", "updated_at").
			Values(id, connection, path, data, visibility, sq.Expr("NOW()")).
			Suffix("ON CONFLICT (connection, path) DO UPDATE SET data = EXCLUDED.data, visibility = EXCLUDED.visibility, updated_at = NOW()").
			ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("%w: upsert: %w", ErrBuildingQuery, err)
		}
		return query, args, nil
	}

	query, args, err := s.qb().Insert(blobsTable).
		Columns("id", "connection", "path", "data", "visibility", "updated_at").
		Values(id, connection, path, data, visibility, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (connection, path) DO UPDATE SET data = excluded.data, visibility = excluded.visibility, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert: %w", ErrBuildingQuery, err)
	}
	return query, args, nil
}

func (s *Store) deleteQuery(connection, path string) (string, []any, error) {
	query, args, err := s.qb().Delete(blobsTable).
		Where(sq.Eq{"connection": connection, "path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete: %w", ErrBuildingQuery, err)
	}
	return query, args, nil
}

func (s *Store) updateVisibilityQuery(connection, path string, visibility int) (string, []any, error) {
	query, args, err := s.qb().Update(blobsTable).
		Set("visibility", visibility).
		Where(sq.Eq{"connection": connection, "path": path}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: update visibility: %w", ErrBuildingQuery, err)
	}
	return query, args, nil
}
