// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package blobstore defines the byte-addressed named-blob abstraction that
// every persisted artifact in secrets-manager is written through: the
// keyring blob, its checksum sidecar, master key files, the dotenv file
// backing the env master-key source, and vault secret records.
//
// A [Store] partitions blobs into logical connections ([models.Connection])
// with independent roots; within a connection, blobs are addressed by a
// caller-chosen path. Two implementations are provided: [localfs] (a plain
// filesystem tree, the default for KEYRING/CHECKSUM/MASTER_KEYS/ENVIRONMENT)
// and [sqlblob] (a relational table, used for VAULT).
package blobstore

//go:generate mockgen -source=interfaces.go -destination=mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/paradisesecurity/secrets-manager/models"
)

// Store is the narrow byte-addressed blob abstraction every persistence
// backend in this module implements.
type Store interface {
	// Has reports whether path exists under connection.
	Has(ctx context.Context, connection models.Connection, path string) (bool, error)

	// Read returns the full contents of path under connection.
	// Returns [ErrNotFound] if path does not exist.
	Read(ctx context.Context, connection models.Connection, path string) ([]byte, error)

	// Open returns a stream over the contents of path under connection.
	// The caller is responsible for closing the returned reader.
	// Returns [ErrNotFound] if path does not exist.
	Open(ctx context.Context, connection models.Connection, path string) (io.ReadCloser, error)

	// Write stores data at path under connection with the given
	// visibility, creating or overwriting it.
	Write(ctx context.Context, connection models.Connection, path string, data []byte, visibility models.Visibility) error

	// WriteStream stores the full contents of r at path under connection
	// with the given visibility, creating or overwriting it.
	WriteStream(ctx context.Context, connection models.Connection, path string, r io.Reader, visibility models.Visibility) error

	// Delete removes path under connection. It is not an error to delete
	// a path that does not exist.
	Delete(ctx context.Context, connection models.Connection, path string) error

	// Mkdir ensures path exists as a directory (or equivalent logical
	// grouping) under connection with the given visibility.
	Mkdir(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error

	// SetVisibility changes the access visibility of an existing path
	// under connection.
	SetVisibility(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error
}
