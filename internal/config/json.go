// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the JSON-specific representation of the
// application configuration. It mirrors [StructuredConfig] but uses JSON
// struct tags.
//
// After decoding, the values are mapped into a [StructuredConfig] by
// [parseJSON].
type StructuredJSONConfig struct {
	// Keyring holds the keyring instance name loaded from the JSON file.
	Keyring struct {
		Name string `json:"name"`
	} `json:"keyring,omitempty"`

	// MasterKey holds the master-key backend selection loaded from the
	// JSON file.
	MasterKey struct {
		Backend string `json:"backend"`
	} `json:"master_key,omitempty"`

	// Argon2 holds Argon2id tuning parameters loaded from the JSON file.
	Argon2 struct {
		TimeCost  uint32 `json:"time_cost"`
		MemoryKiB uint32 `json:"memory_kib"`
		Threads   uint8  `json:"threads"`
		KeyLen    uint32 `json:"key_len"`
	} `json:"argon2,omitempty"`

	// Blob holds blob-store connection roots and VAULT settings loaded
	// from the JSON file.
	Blob struct {
		KeyringDir     string `json:"keyring_dir"`
		ChecksumDir    string `json:"checksum_dir"`
		EnvironmentDir string `json:"environment_dir"`
		MasterKeysDir  string `json:"master_keys_dir"`
		Vault          struct {
			Dialect string `json:"dialect"`
			DSN     string `json:"dsn"`
		} `json:"vault,omitempty"`
	} `json:"blob,omitempty"`
}

// parseJSON opens the JSON file at jsonFilePath, decodes it into a
// [StructuredJSONConfig], and maps the result into a [StructuredConfig].
//
// JSONFilePath is intentionally left empty in the returned config so that
// the path is not re-processed during subsequent merge steps.
//
// Returns a wrapped error if the file cannot be opened or its contents
// cannot be decoded as valid JSON.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Keyring: Keyring{
			Name: jsonCfg.Keyring.Name,
		},
		MasterKey: MasterKey{
			Backend: jsonCfg.MasterKey.Backend,
		},
		Argon2: Argon2{
			TimeCost:  jsonCfg.Argon2.TimeCost,
			MemoryKiB: jsonCfg.Argon2.MemoryKiB,
			Threads:   jsonCfg.Argon2.Threads,
			KeyLen:    jsonCfg.Argon2.KeyLen,
		},
		Blob: Blob{
			KeyringDir:     jsonCfg.Blob.KeyringDir,
			ChecksumDir:    jsonCfg.Blob.ChecksumDir,
			EnvironmentDir: jsonCfg.Blob.EnvironmentDir,
			MasterKeysDir:  jsonCfg.Blob.MasterKeysDir,
			Vault: Vault{
				Dialect: jsonCfg.Blob.Vault.Dialect,
				DSN:     jsonCfg.Blob.Vault.DSN,
			},
		},
		JSONFilePath: "", // intentionally cleared to prevent re-processing
	}

	return cfg, nil
}
