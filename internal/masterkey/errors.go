// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

import "errors"

var (
	// ErrMasterKeyMissing is returned by Require when name resolves to no
	// stored bytes in the active backend.
	ErrMasterKeyMissing = errors.New("masterkey: master key missing")

	// ErrLoaderFailed is returned when a backend's storage is present but
	// unreadable (permission error, corrupt file, malformed dotenv line).
	ErrLoaderFailed = errors.New("masterkey: loader failed")

	// ErrUnknownKeyName is returned for a name outside {kms, sig_secret,
	// sig_public, sig_keypair}.
	ErrUnknownKeyName = errors.New("masterkey: unknown key name")
)
