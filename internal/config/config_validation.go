// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violation is accumulated via [errors.Join] rather than returning on
// the first failure, so a single run surfaces every misconfigured group at
// once instead of making the operator fix-and-rerun one field at a time.
//
// Returns nil if the configuration is valid, or the joined set of
// violations otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Keyring.Name == "" {
		errs = append(errs, ErrInvalidKeyringConfig)
	}

	switch cfg.MasterKey.Backend {
	case "env", "file":
	default:
		errs = append(errs, ErrInvalidMasterKeyConfig)
	}

	if cfg.Blob.KeyringDir == "" || cfg.Blob.ChecksumDir == "" ||
		cfg.Blob.EnvironmentDir == "" || cfg.Blob.MasterKeysDir == "" {
		errs = append(errs, ErrInvalidBlobConfig)
	}

	switch cfg.Blob.Vault.Dialect {
	case "postgres", "sqlite":
	default:
		errs = append(errs, ErrInvalidBlobConfig)
	}

	if cfg.Blob.Vault.DSN == "" {
		errs = append(errs, ErrInvalidBlobConfig)
	}

	return errors.Join(errs...)
}
