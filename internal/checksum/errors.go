// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package checksum

import "errors"

var (
	// ErrMalformedSidecar is returned when a sidecar blob is not exactly
	// [SidecarSize] bytes, or its two halves do not decode as base64.
	ErrMalformedSidecar = errors.New("checksum: malformed sidecar")

	// ErrChecksumMismatch is returned when the recomputed digest of a
	// keyring blob does not match the sidecar's checksum half.
	ErrChecksumMismatch = errors.New("checksum: checksum mismatch")

	// ErrBadSignature is returned when the sidecar's signature half does
	// not verify against the checksum half under the configured signature
	// public key.
	ErrBadSignature = errors.New("checksum: bad signature")
)
