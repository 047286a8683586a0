// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for
// secrets-manager. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Keyring holds settings identifying which keyring instance to operate
	// on.
	Keyring Keyring `envPrefix:"KEYRING_"`

	// MasterKey selects and configures the Master Key Source backend.
	MasterKey MasterKey `envPrefix:"MASTER_KEY_"`

	// Argon2 tunes the Argon2id password-based key derivation performed by
	// the crypto facade. Zero fields fall back to
	// [cryptoengine.DefaultArgon2Params].
	Argon2 Argon2 `envPrefix:"ARGON2_"`

	// Blob holds the logical-connection roots and VAULT database settings
	// for the blob store.
	Blob Blob `envPrefix:"BLOB_"`

	// Setup holds flags specific to the setup CLI. Force is read only from
	// command-line flags, never from the environment or a JSON file.
	Setup Setup

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Keyring identifies which keyring instance a run operates on. The name is
// used to derive the `<name>.keyring` and `<name>.checksum` blob paths.
type Keyring struct {
	// Name is the keyring instance name. Defaults to "default".
	// Env: KEYRING_NAME
	Name string `env:"NAME"`
}

// MasterKey selects which [masterkey.Backend] implementation to construct.
type MasterKey struct {
	// Backend is either "env" or "file". Defaults to "env".
	// Env: MASTER_KEY_BACKEND
	Backend string `env:"BACKEND"`
}

// Argon2 mirrors [cryptoengine.Argon2Params] with env/flag/JSON tags. A
// zero field means "use the default" — see [cryptoengine.DefaultArgon2Params].
type Argon2 struct {
	// TimeCost is the number of Argon2id passes over memory.
	// Env: ARGON2_TIME_COST
	TimeCost uint32 `env:"TIME_COST"`

	// MemoryKiB is the amount of memory used, in kibibytes.
	// Env: ARGON2_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Threads is the degree of parallelism.
	// Env: ARGON2_THREADS
	Threads uint8 `env:"THREADS"`

	// KeyLen is the length in bytes of the derived key.
	// Env: ARGON2_KEY_LEN
	KeyLen uint32 `env:"KEY_LEN"`
}

// Blob holds the filesystem roots for the localfs-backed connections
// (KEYRING, CHECKSUM, ENVIRONMENT, MASTER_KEYS) and the dialect/DSN for the
// sqlblob-backed VAULT connection.
type Blob struct {
	// KeyringDir is the localfs root for the KEYRING connection.
	// Env: BLOB_KEYRING_DIR
	KeyringDir string `env:"KEYRING_DIR"`

	// ChecksumDir is the localfs root for the CHECKSUM connection.
	// Env: BLOB_CHECKSUM_DIR
	ChecksumDir string `env:"CHECKSUM_DIR"`

	// EnvironmentDir is the localfs root for the ENVIRONMENT connection,
	// holding the dotenv file backing the env master-key source.
	// Env: BLOB_ENVIRONMENT_DIR
	EnvironmentDir string `env:"ENVIRONMENT_DIR"`

	// MasterKeysDir is the localfs root for the MASTER_KEYS connection,
	// holding one file per key name when the file master-key backend is
	// selected.
	// Env: BLOB_MASTER_KEYS_DIR
	MasterKeysDir string `env:"MASTER_KEYS_DIR"`

	// Vault holds the relational database settings for the VAULT
	// connection.
	Vault Vault `envPrefix:"VAULT_"`
}

// Vault configures the sqlblob-backed VAULT connection.
type Vault struct {
	// Dialect is either "postgres" or "sqlite". Defaults to "sqlite".
	// Env: BLOB_VAULT_DIALECT
	Dialect string `env:"DIALECT"`

	// DSN is the data source name: a Postgres connection string for the
	// "postgres" dialect, or a filesystem path for the "sqlite" dialect.
	// Env: BLOB_VAULT_DSN
	DSN string `env:"DSN"`
}

// Setup holds settings specific to the setup CLI.
type Setup struct {
	// Force re-initializes master keys even if they already exist. Read
	// only from the -force command-line flag.
	Force bool `env:"-"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
