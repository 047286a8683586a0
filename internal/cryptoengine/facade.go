// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import (
	"io"

	"github.com/paradisesecurity/secrets-manager/models"
)

// Facade is the single entry point every other component goes through to
// touch key material. It never exposes raw bytes to a caller without going
// through a [KeyHandle] or a [Sensitive] wrapper first.
type Facade interface {
	// GenerateSymmetricEncryptionKey produces a fresh AES-256-GCM key.
	GenerateSymmetricEncryptionKey() (KeyHandle, error)
	// GenerateSymmetricAuthKey produces a fresh keyed-BLAKE2b MAC key.
	GenerateSymmetricAuthKey() (KeyHandle, error)
	// GenerateAsymmetricEncryptionKeypair produces a fresh X25519 sealed-box
	// keypair.
	GenerateAsymmetricEncryptionKeypair() (KeyHandle, error)
	// GenerateSignatureKeypair produces a fresh Ed25519 keypair. When seed
	// is non-nil it must be exactly 32 bytes and the keypair is derived
	// deterministically from it; when nil a random seed is drawn from the
	// CSPRNG.
	GenerateSignatureKeypair(seed []byte) (KeyHandle, error)
	// DeriveKeyFromPassword runs Argon2id over password+salt to produce a
	// symmetric encryption key, used by the master-key provider's
	// passphrase-unlock path.
	DeriveKeyFromPassword(password Sensitive, salt []byte) (KeyHandle, error)

	// EncryptMessage encrypts req.Message (or streams req.FileIn to
	// req.FileOut) under key. key must resolve to a symmetric encryption
	// key unless req.Options.Asymmetric is set, in which case key must
	// resolve to an asymmetric encryption public key or keypair.
	EncryptMessage(key KeyHandle, req Request) ([]byte, error)
	// DecryptMessage reverses EncryptMessage. key must resolve to a
	// symmetric encryption key unless req.Options.Asymmetric is set.
	DecryptMessage(key KeyHandle, req Request) ([]byte, error)

	// Seal encrypts plaintext to the public half of an asymmetric
	// encryption keypair using an ephemeral sender key (NaCl anonymous
	// sealed box).
	Seal(recipientPublic KeyHandle, plaintext Sensitive) ([]byte, error)
	// Unseal reverses Seal. keypair must resolve to the full keypair or its
	// secret half.
	Unseal(keypair KeyHandle, sealed []byte) (Sensitive, error)

	// Sign produces a detached Ed25519 signature over src.
	Sign(keypair KeyHandle, src io.Reader) ([]byte, error)
	// VerifySignature reports whether sig is a valid signature over src
	// under the public half of keypair.
	VerifySignature(keypair KeyHandle, src io.Reader, sig []byte) (bool, error)

	// Authenticate computes a keyed-BLAKE2b MAC over src.
	Authenticate(key KeyHandle, src io.Reader) ([]byte, error)
	// VerifyMAC recomputes the MAC over src and compares it against mac in
	// constant time.
	VerifyMAC(key KeyHandle, src io.Reader, mac []byte) (bool, error)

	// Checksum computes a BLAKE2b-512 digest over src, keyed by key when key
	// is non-empty (an unkeyed digest otherwise). The Keyring Integrity
	// Engine's checksum sidecar always supplies a key derived from the
	// signature keypair's public half.
	Checksum(src io.Reader, key []byte) ([]byte, error)

	// ExportKey returns a key handle's descriptor and its raw (not
	// hex-encoded) bytes, for persistence by the master-key provider.
	ExportKey(key KeyHandle) (models.KeyDescriptor, []byte, error)
	// ImportKey reconstructs a key handle from a descriptor and its raw
	// bytes. Returns ErrAdapterMismatch if descriptor.Adapter != AdapterTag.
	ImportKey(descriptor models.KeyDescriptor, raw []byte) (KeyHandle, error)
}
