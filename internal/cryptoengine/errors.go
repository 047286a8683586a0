// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import "errors"

// Sentinel errors returned by the crypto facade. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrWrongKeyType is returned when a key handed to an operation does
	// not carry (or split into) one of the type tags that operation
	// accepts. Always a caller bug, never retried.
	ErrWrongKeyType = errors.New("cryptoengine: wrong key type")

	// ErrMissingRequiredKey is returned when resolving a key from a set of
	// candidates and none of them match any accepted type.
	ErrMissingRequiredKey = errors.New("cryptoengine: no key of an accepted type was supplied")

	// ErrAdapterMismatch is returned when a key's adapter tag does not
	// match the adapter performing the operation.
	ErrAdapterMismatch = errors.New("cryptoengine: key was generated by a different adapter")

	// ErrGenerationFailed is returned when the CSPRNG or KDF cannot
	// produce key material.
	ErrGenerationFailed = errors.New("cryptoengine: key generation failed")

	// ErrBackendFailure wraps an unexpected failure from an underlying
	// primitive (cipher construction, nonce generation, I/O on a file
	// handle passed to sign/checksum).
	ErrBackendFailure = errors.New("cryptoengine: backend failure")

	// ErrAuthenticationFailed is returned by DecryptMessage and Unseal
	// when the AEAD authentication tag does not verify. Treated
	// identically to a MAC mismatch at the API level.
	ErrAuthenticationFailed = errors.New("cryptoengine: authentication failed")

	errCannotMarshalSensitive = errors.New("cryptoengine: Sensitive must never be marshaled")
)
