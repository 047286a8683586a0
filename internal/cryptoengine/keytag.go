// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

import "fmt"

// KeyType discriminates the key handles the facade operates on. It replaces
// runtime-reflection method dispatch with a total switch over a closed
// enum — an unrecognised tag is a compile-time impossibility, not a
// runtime surprise.
type KeyType int

const (
	_ KeyType = iota
	// KeyTypeSymmetricEncryption wraps a 32-byte AES-256-GCM key.
	KeyTypeSymmetricEncryption
	// KeyTypeSymmetricAuthentication wraps a 32-byte keyed-BLAKE2b MAC key.
	KeyTypeSymmetricAuthentication
	// KeyTypeAsymmetricEncryptionKeypair wraps an X25519 sealed-box keypair.
	KeyTypeAsymmetricEncryptionKeypair
	// KeyTypeAsymmetricEncryptionSecretKey is the secret half of a
	// KeyTypeAsymmetricEncryptionKeypair.
	KeyTypeAsymmetricEncryptionSecretKey
	// KeyTypeAsymmetricEncryptionPublicKey is the public half of a
	// KeyTypeAsymmetricEncryptionKeypair.
	KeyTypeAsymmetricEncryptionPublicKey
	// KeyTypeAsymmetricSignatureKeypair wraps an Ed25519 keypair.
	KeyTypeAsymmetricSignatureKeypair
	// KeyTypeAsymmetricSignatureSecretKey is the secret half of a
	// KeyTypeAsymmetricSignatureKeypair.
	KeyTypeAsymmetricSignatureSecretKey
	// KeyTypeAsymmetricSignaturePublicKey is the public half of a
	// KeyTypeAsymmetricSignatureKeypair.
	KeyTypeAsymmetricSignaturePublicKey
)

// String implements fmt.Stringer for diagnostic messages. Never used to
// carry key material — only the tag name.
func (t KeyType) String() string {
	switch t {
	case KeyTypeSymmetricEncryption:
		return "symmetric_encryption_key"
	case KeyTypeSymmetricAuthentication:
		return "symmetric_authentication_key"
	case KeyTypeAsymmetricEncryptionKeypair:
		return "asymmetric_encryption_keypair"
	case KeyTypeAsymmetricEncryptionSecretKey:
		return "asymmetric_encryption_secret_key"
	case KeyTypeAsymmetricEncryptionPublicKey:
		return "asymmetric_encryption_public_key"
	case KeyTypeAsymmetricSignatureKeypair:
		return "asymmetric_signature_keypair"
	case KeyTypeAsymmetricSignatureSecretKey:
		return "asymmetric_signature_secret_key"
	case KeyTypeAsymmetricSignaturePublicKey:
		return "asymmetric_signature_public_key"
	default:
		return fmt.Sprintf("keytype(%d)", int(t))
	}
}

// IsKeypair reports whether t is one of the two keypair families that
// split into a public and a secret half.
func (t KeyType) IsKeypair() bool {
	return t == KeyTypeAsymmetricEncryptionKeypair || t == KeyTypeAsymmetricSignatureKeypair
}

// IsPublicKey reports whether t is a public-key half.
func (t KeyType) IsPublicKey() bool {
	return t == KeyTypeAsymmetricEncryptionPublicKey || t == KeyTypeAsymmetricSignaturePublicKey
}

// IsSecretKey reports whether t is a secret-key half (asymmetric only —
// symmetric keys are not considered "secret key" halves since they have no
// keypair to split from).
func (t KeyType) IsSecretKey() bool {
	return t == KeyTypeAsymmetricEncryptionSecretKey || t == KeyTypeAsymmetricSignatureSecretKey
}

// children returns {public, secret} for a keypair type, or (0, 0) for any
// other tag — the mapping is total for the two keypair families and empty
// otherwise.
func (t KeyType) children() (public, secret KeyType) {
	switch t {
	case KeyTypeAsymmetricEncryptionKeypair:
		return KeyTypeAsymmetricEncryptionPublicKey, KeyTypeAsymmetricEncryptionSecretKey
	case KeyTypeAsymmetricSignatureKeypair:
		return KeyTypeAsymmetricSignaturePublicKey, KeyTypeAsymmetricSignatureSecretKey
	default:
		return 0, 0
	}
}
