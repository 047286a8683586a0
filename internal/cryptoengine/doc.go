// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cryptoengine implements the crypto facade: a uniform front to the
// primitives secrets-manager needs (AEAD encrypt/decrypt, sign/verify,
// sealed-box seal/unseal, keyed BLAKE2b MAC and checksum, key generation,
// and key import/export).
//
// # Key-type discipline
//
// Every key handle carries a [KeyType] tag. Each facade operation declares
// the type(s) it accepts and rejects everything else with [ErrWrongKeyType]
// before touching any cryptographic primitive. When an operation needs one
// half of a keypair (a signature secret key to sign, a signature public key
// to verify, an encryption public key to seal, an encryption secret key to
// unseal) and is handed the full keypair instead, [KeyHandle.Split] is used
// to recover the half it needs.
//
// # Adapter tag
//
// Every [KeyHandle] also carries an adapter tag and version
// ([AdapterTag], [Version]). A single adapter ("stdcrypto", backed by the
// Go standard library plus golang.org/x/crypto) is registered today;
// operations reject a key whose adapter tag does not match, so keys
// generated by a future adapter can never be silently fed to this one.
//
// # HiddenString buffers
//
// [Sensitive] is the zeroize-on-close container for cleartext and raw key
// material. It is never printed, never placed in an error, and never
// marshaled as itself.
package cryptoengine
