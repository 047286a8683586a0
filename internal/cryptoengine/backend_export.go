// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"fmt"

	"github.com/paradisesecurity/secrets-manager/models"
)

// ExportKey implements [Facade]. It returns the reconstitution descriptor
// alongside the raw key bytes. For a keypair the raw bytes are the secret
// half followed by the public half, while Descriptor.Hex encodes the secret
// half only, so callers that need both halves persisted should export the
// keypair handle directly rather than splitting first.
func (a *adapter) ExportKey(key KeyHandle) (models.KeyDescriptor, []byte, error) {
	if key.AdapterTag != "" && key.AdapterTag != AdapterTag {
		return models.KeyDescriptor{}, nil, ErrAdapterMismatch
	}
	raw := key.Raw
	if key.Type.IsKeypair() {
		raw = append(append([]byte{}, key.Raw...), key.Public...)
	}
	return key.Descriptor(), raw, nil
}

// ImportKey implements [Facade]. It reverses ExportKey: a keypair's raw
// bytes are the secret half followed by the public half, split back apart
// by the secret-key length implied by descriptor.Type.
func (a *adapter) ImportKey(descriptor models.KeyDescriptor, raw []byte) (KeyHandle, error) {
	if descriptor.Adapter != AdapterTag {
		return KeyHandle{}, ErrAdapterMismatch
	}
	kt, err := keyTypeFromString(descriptor.Type)
	if err != nil {
		return KeyHandle{}, err
	}
	handle := KeyHandle{Type: kt, AdapterTag: descriptor.Adapter, Version: descriptor.Version}
	switch {
	case kt == KeyTypeAsymmetricEncryptionKeypair:
		if len(raw) != 64 {
			return KeyHandle{}, fmt.Errorf("%w: expected 64 bytes for sealed-box keypair, got %d", ErrWrongKeyType, len(raw))
		}
		handle.Raw, handle.Public = raw[:32], raw[32:64]
	case kt == KeyTypeAsymmetricSignatureKeypair:
		if len(raw) != 96 {
			return KeyHandle{}, fmt.Errorf("%w: expected 96 bytes for Ed25519 keypair, got %d", ErrWrongKeyType, len(raw))
		}
		handle.Raw, handle.Public = raw[:64], raw[64:96]
	default:
		handle.Raw = raw
	}
	return handle, nil
}

func keyTypeFromString(s string) (KeyType, error) {
	for t := KeyTypeSymmetricEncryption; t <= KeyTypeAsymmetricSignaturePublicKey; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognized key type tag %q", ErrWrongKeyType, s)
}
