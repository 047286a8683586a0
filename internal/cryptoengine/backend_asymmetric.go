// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// Seal implements [Facade] using an anonymous NaCl sealed box: an ephemeral
// keypair is generated per call, the shared secret is derived against
// recipientPublic, and the ephemeral public key is prepended to the
// ciphertext so Unseal never needs the sender's identity.
func (a *adapter) Seal(recipientPublic KeyHandle, plaintext Sensitive) ([]byte, error) {
	resolved, err := resolveRequired(recipientPublic, KeyTypeAsymmetricEncryptionKeypair, KeyTypeAsymmetricEncryptionPublicKey)
	if err != nil {
		return nil, err
	}
	public := resolved.Public
	if resolved.Type == KeyTypeAsymmetricEncryptionPublicKey {
		public = resolved.Raw
	}
	if len(public) != 32 {
		return nil, fmt.Errorf("%w: public key must be 32 bytes, got %d", ErrWrongKeyType, len(public))
	}
	var pub [32]byte
	copy(pub[:], public)

	sealed, err := box.SealAnonymous(nil, plaintext.Bytes(), &pub, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return sealed, nil
}

// Unseal implements [Facade]. keypair must resolve to the full keypair or
// its secret half. When only the secret half is available, the matching
// public key is recomputed via the X25519 base-point scalar multiplication
// (the same relationship [box.GenerateKey] establishes at creation time).
func (a *adapter) Unseal(keypair KeyHandle, sealed []byte) (Sensitive, error) {
	resolved, err := resolveRequired(keypair, KeyTypeAsymmetricEncryptionKeypair, KeyTypeAsymmetricEncryptionSecretKey)
	if err != nil {
		return Sensitive{}, err
	}
	if len(resolved.Raw) != 32 {
		return Sensitive{}, fmt.Errorf("%w: secret key must be 32 bytes, got %d", ErrWrongKeyType, len(resolved.Raw))
	}
	var secret [32]byte
	copy(secret[:], resolved.Raw)

	var public [32]byte
	if resolved.Type == KeyTypeAsymmetricEncryptionKeypair && len(resolved.Public) == 32 {
		copy(public[:], resolved.Public)
	} else {
		pub, err := curve25519.X25519(resolved.Raw, curve25519.Basepoint)
		if err != nil {
			return Sensitive{}, fmt.Errorf("%w: %w", ErrBackendFailure, err)
		}
		copy(public[:], pub)
	}

	plaintext, ok := box.OpenAnonymous(nil, sealed, &public, &secret)
	if !ok {
		return Sensitive{}, ErrAuthenticationFailed
	}
	return NewSensitive(plaintext), nil
}
