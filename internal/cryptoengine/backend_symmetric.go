// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptMessage implements [Facade]. For a symmetric request it mirrors
// the source keychain's EncryptData: build an AES-256-GCM cipher from key,
// draw a random nonce, seal, and return nonce‖ciphertext (then apply the
// request's output encoding). For an asymmetric request it delegates to
// Seal.
func (a *adapter) EncryptMessage(key KeyHandle, req Request) ([]byte, error) {
	if req.Options.Asymmetric {
		resolved, err := resolveRequired(key, KeyTypeAsymmetricEncryptionKeypair, KeyTypeAsymmetricEncryptionPublicKey)
		if err != nil {
			return nil, err
		}
		plaintext, err := req.payload()
		if err != nil {
			return nil, err
		}
		out, err := a.Seal(resolved, NewSensitive(plaintext))
		if err != nil {
			return nil, err
		}
		return req.deliver(encode(out, req.Options.Encoding))
	}

	resolved, err := resolveRequired(key, KeyTypeSymmetricEncryption)
	if err != nil {
		return nil, err
	}
	plaintext, err := req.payload()
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(resolved.Raw)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}
	sealed := gcm.Seal(nil, nonce, plaintext, req.Options.AdditionalData)
	blob := append(nonce, sealed...)
	return req.deliver(encode(blob, req.Options.Encoding))
}

// DecryptMessage implements [Facade]. It reverses EncryptMessage: split
// nonce‖ciphertext, open the GCM seal, and surface ErrAuthenticationFailed
// on tag mismatch instead of the raw cipher error.
func (a *adapter) DecryptMessage(key KeyHandle, req Request) ([]byte, error) {
	if req.Options.Asymmetric {
		resolved, err := resolveRequired(key, KeyTypeAsymmetricEncryptionKeypair, KeyTypeAsymmetricEncryptionSecretKey)
		if err != nil {
			return nil, err
		}
		blob, err := req.payload()
		if err != nil {
			return nil, err
		}
		blob, err = decode(blob, req.Options.Encoding)
		if err != nil {
			return nil, err
		}
		plaintext, err := a.Unseal(resolved, blob)
		if err != nil {
			return nil, err
		}
		defer plaintext.Close()
		return req.deliver(plaintext.Bytes())
	}

	resolved, err := resolveRequired(key, KeyTypeSymmetricEncryption)
	if err != nil {
		return nil, err
	}
	blob, err := req.payload()
	if err != nil {
		return nil, err
	}
	blob, err = decode(blob, req.Options.Encoding)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(resolved.Raw)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than nonce", ErrAuthenticationFailed)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, req.Options.AdditionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	return req.deliver(plaintext)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return gcm, nil
}
