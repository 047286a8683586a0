// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"crypto/ed25519"
	"fmt"
	"io"
)

// Sign implements [Facade]. keypair must resolve to the full signature
// keypair or its secret half.
func (a *adapter) Sign(keypair KeyHandle, src io.Reader) ([]byte, error) {
	resolved, err := resolveRequired(keypair, KeyTypeAsymmetricSignatureKeypair, KeyTypeAsymmetricSignatureSecretKey)
	if err != nil {
		return nil, err
	}
	if len(resolved.Raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: signing key must be %d bytes, got %d", ErrWrongKeyType, ed25519.PrivateKeySize, len(resolved.Raw))
	}
	msg, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return ed25519.Sign(ed25519.PrivateKey(resolved.Raw), msg), nil
}

// VerifySignature implements [Facade]. keypair must resolve to the full
// signature keypair or its public half.
func (a *adapter) VerifySignature(keypair KeyHandle, src io.Reader, sig []byte) (bool, error) {
	resolved, err := resolveRequired(keypair, KeyTypeAsymmetricSignatureKeypair, KeyTypeAsymmetricSignaturePublicKey)
	if err != nil {
		return false, err
	}
	public := resolved.Public
	if resolved.Type == KeyTypeAsymmetricSignaturePublicKey {
		public = resolved.Raw
	}
	if len(public) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrWrongKeyType, ed25519.PublicKeySize, len(public))
	}
	msg, err := io.ReadAll(src)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return ed25519.Verify(ed25519.PublicKey(public), msg, sig), nil
}
