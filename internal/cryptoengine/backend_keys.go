// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/box"
)

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return b, nil
}

func (a *adapter) GenerateSymmetricEncryptionKey() (KeyHandle, error) {
	raw, err := randomBytes(32)
	if err != nil {
		return KeyHandle{}, err
	}
	return KeyHandle{Type: KeyTypeSymmetricEncryption, Raw: raw, AdapterTag: AdapterTag, Version: Version}, nil
}

func (a *adapter) GenerateSymmetricAuthKey() (KeyHandle, error) {
	raw, err := randomBytes(32)
	if err != nil {
		return KeyHandle{}, err
	}
	return KeyHandle{Type: KeyTypeSymmetricAuthentication, Raw: raw, AdapterTag: AdapterTag, Version: Version}, nil
}

func (a *adapter) GenerateAsymmetricEncryptionKeypair() (KeyHandle, error) {
	public, secret, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return KeyHandle{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return KeyHandle{
		Type:       KeyTypeAsymmetricEncryptionKeypair,
		Raw:        secret[:],
		Public:     public[:],
		AdapterTag: AdapterTag,
		Version:    Version,
	}, nil
}

func (a *adapter) GenerateSignatureKeypair(seed []byte) (KeyHandle, error) {
	var public ed25519.PublicKey
	var secret ed25519.PrivateKey
	if seed != nil {
		if len(seed) != ed25519.SeedSize {
			return KeyHandle{}, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrGenerationFailed, ed25519.SeedSize, len(seed))
		}
		secret = ed25519.NewKeyFromSeed(seed)
		public = secret.Public().(ed25519.PublicKey)
	} else {
		var err error
		public, secret, err = ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return KeyHandle{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
	}
	return KeyHandle{
		Type:       KeyTypeAsymmetricSignatureKeypair,
		Raw:        []byte(secret),
		Public:     []byte(public),
		AdapterTag: AdapterTag,
		Version:    Version,
	}, nil
}

// DeriveKeyFromPassword runs Argon2id over password+salt, producing the
// same KEK derivation the source keychain performed but wrapped in a
// KeyHandle instead of a bare slice.
func (a *adapter) DeriveKeyFromPassword(password Sensitive, salt []byte) (KeyHandle, error) {
	p := a.argon2Params
	raw := argon2.IDKey(password.Bytes(), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)
	return KeyHandle{Type: KeyTypeSymmetricEncryption, Raw: raw, AdapterTag: AdapterTag, Version: Version}, nil
}
