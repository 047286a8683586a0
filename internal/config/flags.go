// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-keyring-name keyring instance name
//	-master-key-backend master key backend selection ("env" or "file")
//	-keyring-dir KEYRING connection root directory
//	-checksum-dir CHECKSUM connection root directory
//	-environment-dir ENVIRONMENT connection root directory
//	-master-keys-dir MASTER_KEYS connection root directory
//	-vault-dialect VAULT connection SQL dialect ("postgres" or "sqlite")
//	-vault-dsn VAULT connection data source name
//	-argon2-time-cost Argon2id time cost
//	-argon2-memory-kib Argon2id memory cost, in KiB
//	-argon2-threads Argon2id parallelism
//	-argon2-key-len Argon2id derived key length, in bytes
//	-force re-initialize master keys even if they already exist
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var keyringName string
	var masterKeyBackend string
	var keyringDir, checksumDir, environmentDir, masterKeysDir string
	var vaultDialect, vaultDSN string
	var argonTimeCost, argonMemoryKiB, argonKeyLen uint
	var argonThreads uint
	var force bool
	var jsonConfigPath string

	flag.StringVar(&keyringName, "keyring-name", "", "Keyring instance name")
	flag.StringVar(&masterKeyBackend, "master-key-backend", "", "Master key backend (env|file)")
	flag.StringVar(&keyringDir, "keyring-dir", "", "KEYRING connection root directory")
	flag.StringVar(&checksumDir, "checksum-dir", "", "CHECKSUM connection root directory")
	flag.StringVar(&environmentDir, "environment-dir", "", "ENVIRONMENT connection root directory")
	flag.StringVar(&masterKeysDir, "master-keys-dir", "", "MASTER_KEYS connection root directory")
	flag.StringVar(&vaultDialect, "vault-dialect", "", "VAULT connection SQL dialect (postgres|sqlite)")
	flag.StringVar(&vaultDSN, "vault-dsn", "", "VAULT connection data source name")
	flag.UintVar(&argonTimeCost, "argon2-time-cost", 0, "Argon2id time cost")
	flag.UintVar(&argonMemoryKiB, "argon2-memory-kib", 0, "Argon2id memory cost, in KiB")
	flag.UintVar(&argonThreads, "argon2-threads", 0, "Argon2id parallelism")
	flag.UintVar(&argonKeyLen, "argon2-key-len", 0, "Argon2id derived key length, in bytes")
	flag.BoolVar(&force, "force", false, "Re-initialize master keys even if they already exist")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Keyring: Keyring{
			Name: keyringName,
		},
		MasterKey: MasterKey{
			Backend: masterKeyBackend,
		},
		Argon2: Argon2{
			TimeCost:  uint32(argonTimeCost),
			MemoryKiB: uint32(argonMemoryKiB),
			Threads:   uint8(argonThreads),
			KeyLen:    uint32(argonKeyLen),
		},
		Blob: Blob{
			KeyringDir:     keyringDir,
			ChecksumDir:    checksumDir,
			EnvironmentDir: environmentDir,
			MasterKeysDir:  masterKeysDir,
			Vault: Vault{
				Dialect: vaultDialect,
				DSN:     vaultDSN,
			},
		},
		Setup: Setup{
			Force: force,
		},
		JSONFilePath: jsonConfigPath,
	}
}
