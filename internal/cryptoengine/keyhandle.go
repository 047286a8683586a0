// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"encoding/hex"
	"fmt"

	"github.com/paradisesecurity/secrets-manager/models"
)

// AdapterTag is the name of the registered implementation that produced a
// key. Operations reject a key whose tag does not match their own adapter,
// so a key generated by one backend can never be fed to a different one.
const AdapterTag = "stdcrypto"

// Version is the wire version this adapter stamps onto every key it
// generates.
const Version = "v1"

// KeyHandle is the discriminated-union key representation the facade
// passes around: a type tag, the adapter that produced it, and the raw
// bytes. For keypair types, Raw holds the secret half and Public holds the
// public half; for every other type Public is empty.
type KeyHandle struct {
	Type       KeyType
	Raw        []byte
	Public     []byte
	AdapterTag string
	Version    string
}

// Hex returns the hex encoding of Raw, for [Facade.ExportKey] and for
// embedding in a [models.KeyDescriptor].
func (k KeyHandle) Hex() string {
	return hex.EncodeToString(k.Raw)
}

// PublicHex returns the hex encoding of Public (empty string if k is not a
// keypair).
func (k KeyHandle) PublicHex() string {
	return hex.EncodeToString(k.Public)
}

// Split decomposes a keypair handle into its public and secret halves.
// ok is false for any non-keypair type.
func (k KeyHandle) Split() (public, secret KeyHandle, ok bool) {
	if !k.Type.IsKeypair() {
		return KeyHandle{}, KeyHandle{}, false
	}
	pubType, secType := k.Type.children()
	public = KeyHandle{Type: pubType, Raw: k.Public, AdapterTag: k.AdapterTag, Version: k.Version}
	secret = KeyHandle{Type: secType, Raw: k.Raw, AdapterTag: k.AdapterTag, Version: k.Version}
	return public, secret, true
}

// PublicBytes returns the public key material for a keypair or public-key
// handle, regardless of which form it was resolved to: the Public field
// for a full keypair, or Raw itself for an already-split public-only
// handle. Returns nil for any non-keypair, non-public key type.
func (k KeyHandle) PublicBytes() []byte {
	switch {
	case k.Type.IsKeypair():
		return k.Public
	case k.Type == KeyTypeAsymmetricEncryptionPublicKey, k.Type == KeyTypeAsymmetricSignaturePublicKey:
		return k.Raw
	default:
		return nil
	}
}

// Descriptor builds the reconstitution tuple stored alongside a wrapped
// DEK: hex, type, adapter name, version.
func (k KeyHandle) Descriptor() models.KeyDescriptor {
	return models.KeyDescriptor{
		Hex:     k.Hex(),
		Type:    k.Type.String(),
		Adapter: k.AdapterTag,
		Version: k.Version,
	}
}

// resolveRequired matches a single key handle against a set of accepted
// types, splitting a keypair into the half that is needed (an encryption
// request needing a public key accepts a full keypair and splits it).
// Returns ErrWrongKeyType if nothing matches.
func resolveRequired(key KeyHandle, accepted ...KeyType) (KeyHandle, error) {
	if key.AdapterTag != "" && key.AdapterTag != AdapterTag {
		return KeyHandle{}, ErrAdapterMismatch
	}
	for _, t := range accepted {
		if key.Type == t {
			return key, nil
		}
	}
	if key.Type.IsKeypair() {
		public, secret, _ := key.Split()
		for _, t := range accepted {
			if public.Type == t {
				return public, nil
			}
			if secret.Type == t {
				return secret, nil
			}
		}
	}
	return KeyHandle{}, fmt.Errorf("%w: want one of %v, got %s", ErrWrongKeyType, accepted, key.Type)
}

// Resolve picks the first key in keys whose type (or, for a keypair, one of
// its split halves) belongs to accepted. Used when an operation is handed a
// set of candidate keys rather than one specific key. Returns
// ErrMissingRequiredKey if none match.
func Resolve(keys []KeyHandle, accepted ...KeyType) (KeyHandle, error) {
	for _, k := range keys {
		if resolved, err := resolveRequired(k, accepted...); err == nil {
			return resolved, nil
		}
	}
	return KeyHandle{}, ErrMissingRequiredKey
}
