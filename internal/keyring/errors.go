// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import "errors"

var (
	// ErrEntryNotFound is returned by LookupDek/Remove when no DEK is
	// stored under the requested (vault, key) pair.
	ErrEntryNotFound = errors.New("keyring: entry not found")

	// ErrSerialization is returned when the canonical JSON form of a
	// keyring cannot be produced or parsed.
	ErrSerialization = errors.New("keyring: serialization error")

	// ErrInconsistent is returned when the flattened Macs list recovered
	// from a loaded keyring does not have exactly one entry per (vault,
	// secret_key) pair, indicating on-disk corruption beyond what the
	// checksum sidecar would have already caught.
	ErrInconsistent = errors.New("keyring: inconsistent macs length")

	// ErrSecretExists is returned by InsertDek when an entry already
	// exists for (vault, secret_key) and replace was not requested.
	ErrSecretExists = errors.New("keyring: secret key already exists in vault")

	// ErrPersistFailed is returned by SealAndPersist when either the
	// keyring blob or the checksum sidecar fails to write, and prior
	// on-disk state was left unchanged (a sidecar-write failure whose
	// rollback of the keyring blob succeeded, or a keyring-blob-write
	// failure, which never touches the sidecar at all).
	ErrPersistFailed = errors.New("keyring: persist failed")

	// ErrKeyringInconsistent is returned by SealAndPersist when the
	// checksum sidecar write fails after the keyring blob write already
	// succeeded, and the rollback delete of that keyring blob also fails:
	// the on-disk keyring and sidecar are now out of sync and must be
	// repaired manually.
	ErrKeyringInconsistent = errors.New("keyring: keyring and sidecar left inconsistent on disk")
)
