// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MasterKeyName identifies one of the four key materials held by the
// process-wide MasterKeyBundle.
type MasterKeyName string

const (
	// MasterKeyKMS is the symmetric key that wraps every DEK.
	MasterKeyKMS MasterKeyName = "kms"
	// MasterKeySigSecret is the secret half of the signature keypair.
	MasterKeySigSecret MasterKeyName = "sig_secret"
	// MasterKeySigPublic is the public half of the signature keypair.
	MasterKeySigPublic MasterKeyName = "sig_public"
	// MasterKeySigKeypair addresses both signature halves as one unit; a
	// backend may store them under this combined name and let the
	// provider split it via the crypto facade on demand.
	MasterKeySigKeypair MasterKeyName = "sig_keypair"
)

// MasterKeyNames lists every name [masterkey.Provider.IsInitialized] checks.
var MasterKeyNames = []MasterKeyName{MasterKeyKMS, MasterKeySigSecret, MasterKeySigPublic}
