// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretproc

import "errors"

var (
	// ErrSerialization is returned when a cleartext value cannot be
	// JSON-encoded on write, or a stored envelope cannot be JSON-decoded
	// on read.
	ErrSerialization = errors.New("secretproc: serialization error")

	// ErrAuthenticationFailed is returned by Get when the MAC over the
	// stored envelope does not match its MAC prefix. No decryption is
	// attempted once this fires.
	ErrAuthenticationFailed = errors.New("secretproc: authentication failed")

	// ErrMalformedRecord is returned when a stored secret record is
	// shorter than the 64-byte MAC prefix.
	ErrMalformedRecord = errors.New("secretproc: malformed secret record")
)
