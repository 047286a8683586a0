// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMasterKeyConfig indicates an unrecognized master-key
	// backend selection.
	ErrInvalidMasterKeyConfig = errors.New("invalid master key configuration")
	// ErrInvalidBlobConfig indicates missing blob-store connection roots
	// or an invalid VAULT dialect/DSN.
	ErrInvalidBlobConfig = errors.New("invalid blob store configuration")
	// ErrInvalidKeyringConfig indicates an empty keyring instance name.
	ErrInvalidKeyringConfig = errors.New("invalid keyring configuration")
)
