// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Checksum implements [Facade]. When key is non-empty the digest is keyed
// BLAKE2b-512 — the basis for the Keyring Integrity Engine's 176-byte
// sidecar, which stores the keyed digest alongside a signature over it. A
// nil or empty key falls back to an unkeyed digest.
func (a *adapter) Checksum(src io.Reader, key []byte) ([]byte, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	if _, err := io.Copy(h, src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return h.Sum(nil), nil
}
