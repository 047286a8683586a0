// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Authenticate implements [Facade] with a keyed BLAKE2b-512 MAC, covering
// the entire envelope (wrapped DEK plus ciphertext) rather than relying
// solely on the AEAD tag of an individual field.
func (a *adapter) Authenticate(key KeyHandle, src io.Reader) ([]byte, error) {
	resolved, err := resolveRequired(key, KeyTypeSymmetricAuthentication)
	if err != nil {
		return nil, err
	}
	h, err := blake2b.New512(resolved.Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	if _, err := io.Copy(h, src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return h.Sum(nil), nil
}

// VerifyMAC implements [Facade]. The comparison runs in constant time so
// the presence or position of a mismatch cannot leak through timing.
func (a *adapter) VerifyMAC(key KeyHandle, src io.Reader, mac []byte) (bool, error) {
	computed, err := a.Authenticate(key, src)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(computed, mac) == 1, nil
}
