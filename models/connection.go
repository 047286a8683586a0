// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the shared, serializable data shapes that cross
// package boundaries within secrets-manager: the persisted keyring
// structure, the wire envelope for an individual secret, and the logical
// connection and master-key names referenced by every backend.
package models

// Connection is one of the logical blob-store connections reserved by the
// core. Each connection has an independent root in whatever backend a blob
// store adapter uses (a directory, a bucket, a schema, ...).
type Connection string

const (
	// ConnectionKeyring holds the AEAD-encrypted keyring blob ("<name>.keyring").
	ConnectionKeyring Connection = "KEYRING"
	// ConnectionChecksum holds the 176-byte checksum sidecar ("<name>.checksum").
	ConnectionChecksum Connection = "CHECKSUM"
	// ConnectionEnvironment holds the dotenv file backing the env master-key source.
	ConnectionEnvironment Connection = "ENVIRONMENT"
	// ConnectionMasterKeys holds one file per master-key name (file backend).
	ConnectionMasterKeys Connection = "MASTER_KEYS"
	// ConnectionVault holds secret records, one blob per (vault, secret_key).
	ConnectionVault Connection = "VAULT"
)

// Visibility controls filesystem/object permissions applied by a blob store
// adapter on write.
type Visibility int

const (
	// VisibilityPrivate restricts access to the owning process/user
	// (0600 for files, 0700 for directories).
	VisibilityPrivate Visibility = iota
	// VisibilityPublic leaves default, world-readable permissions.
	VisibilityPublic
)
