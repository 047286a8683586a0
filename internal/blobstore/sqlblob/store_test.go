// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sqlblob

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore"
	"github.com/paradisesecurity/secrets-manager/internal/obslog"
	"github.com/paradisesecurity/secrets-manager/models"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return New(db, DialectPostgres, obslog.Nop()), mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestHas_True(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "vault1/secret1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := s.Has(context.Background(), models.ConnectionVault, "vault1/secret1")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if !ok {
		t.Fatal("expected Has to report true")
	}
}

func TestHas_False(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "missing").
		WillReturnError(sql.ErrNoRows)

	ok, err := s.Has(context.Background(), models.ConnectionVault, "missing")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if ok {
		t.Fatal("expected Has to report false")
	}
}

func TestRead_Found(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT data FROM blobs").
		WithArgs("VAULT", "vault1/secret1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte("record-bytes")))

	got, err := s.Read(context.Background(), models.ConnectionVault, "vault1/secret1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "record-bytes" {
		t.Fatalf("got %q", got)
	}
}

func TestRead_NotFound(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT data FROM blobs").
		WithArgs("VAULT", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Read(context.Background(), models.ConnectionVault, "missing")
	if !errors.Is(err, blobstore.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestWrite_Success(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Write(context.Background(), models.ConnectionVault, "vault1/secret1", []byte("data"), models.VisibilityPrivate)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func TestWrite_UniqueViolationWrapped(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectExec("INSERT INTO blobs").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := s.Write(context.Background(), models.ConnectionVault, "vault1/secret1", []byte("data"), models.VisibilityPrivate)
	if !errors.Is(err, blobstore.ErrWriteFailed) {
		t.Fatalf("got %v, want ErrWriteFailed", err)
	}
}

func TestDelete_Success(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectExec("DELETE FROM blobs").
		WithArgs("VAULT", "vault1/secret1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(context.Background(), models.ConnectionVault, "vault1/secret1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestMkdir_AlreadyExists(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "vault1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	err := s.Mkdir(context.Background(), models.ConnectionVault, "vault1", models.VisibilityPrivate)
	if !errors.Is(err, blobstore.ErrAlreadyExists) {
		t.Fatalf("got %v, want ErrAlreadyExists", err)
	}
}

func TestMkdir_CreatesMarker(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "vault1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO blobs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.Mkdir(context.Background(), models.ConnectionVault, "vault1", models.VisibilityPrivate); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
}

func TestSetVisibility_NotFound(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "missing").
		WillReturnError(sql.ErrNoRows)

	err := s.SetVisibility(context.Background(), models.ConnectionVault, "missing", models.VisibilityPublic)
	if !errors.Is(err, blobstore.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSetVisibility_Success(t *testing.T) {
	s, mock, db := newTestStore(t)
	defer db.Close()
	mock.ExpectQuery("SELECT 1 FROM blobs").
		WithArgs("VAULT", "vault1/secret1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec("UPDATE blobs SET visibility").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.SetVisibility(context.Background(), models.ConnectionVault, "vault1/secret1", models.VisibilityPublic)
	if err != nil {
		t.Fatalf("SetVisibility: %v", err)
	}
}
