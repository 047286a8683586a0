// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore/localfs"
	"github.com/paradisesecurity/secrets-manager/internal/blobstore/sqlblob"
	"github.com/paradisesecurity/secrets-manager/internal/checksum"
	"github.com/paradisesecurity/secrets-manager/internal/config"
	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/internal/keyring"
	"github.com/paradisesecurity/secrets-manager/internal/masterkey"
	"github.com/paradisesecurity/secrets-manager/internal/obslog"
	"github.com/paradisesecurity/secrets-manager/migrations"
	"github.com/paradisesecurity/secrets-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// dotenvFileName is the fixed blob path of the dotenv file backing the env
// master-key source, written under the ENVIRONMENT connection.
const dotenvFileName = ".env"

func main() {
	printBuildInfo()

	log := obslog.New("setup")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().Msg("starting setup")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	fsStore, err := localfs.New(map[models.Connection]string{
		models.ConnectionKeyring:     cfg.Blob.KeyringDir,
		models.ConnectionChecksum:    cfg.Blob.ChecksumDir,
		models.ConnectionEnvironment: cfg.Blob.EnvironmentDir,
		models.ConnectionMasterKeys:  cfg.Blob.MasterKeysDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing blob store connections")
	}

	db, err := sqlblob.Open(ctx, sqlblob.Dialect(cfg.Blob.Vault.Dialect), cfg.Blob.Vault.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening vault connection")
	}
	defer db.Close()
	if err := migrations.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("error migrating vault connection")
	}

	backend, err := buildMasterKeyBackend(cfg, fsStore)
	if err != nil {
		log.Fatal().Err(err).Msg("error building master key backend")
	}

	facade := cryptoengine.New(cryptoengine.Argon2Params{
		Time:      cfg.Argon2.TimeCost,
		MemoryKiB: cfg.Argon2.MemoryKiB,
		Threads:   cfg.Argon2.Threads,
		KeyLen:    cfg.Argon2.KeyLen,
	})
	provider := masterkey.New(backend, facade)

	if provider.IsInitialized() && !cfg.Setup.Force {
		log.Error().Msg("master keys already exist; re-run with -force to re-initialize")
		os.Exit(1)
	}

	if err := generateAndStoreMasterKeys(facade, provider); err != nil {
		log.Fatal().Err(err).Msg("error generating master keys")
	}

	if err := sealEmptyKeyring(ctx, cfg, facade, provider, fsStore, log); err != nil {
		log.Fatal().Err(err).Msg("error sealing keyring")
	}

	log.Info().Str("keyring", cfg.Keyring.Name).Msg("setup complete")
}

// buildMasterKeyBackend constructs the configured [masterkey.Backend],
// ensuring the env backend's dotenv file lives at a fixed path inside the
// ENVIRONMENT connection root.
func buildMasterKeyBackend(cfg *config.StructuredConfig, fsStore *localfs.Store) (masterkey.Backend, error) {
	switch cfg.MasterKey.Backend {
	case "file":
		return masterkey.NewFileBackend(cfg.Blob.MasterKeysDir), nil
	case "env":
		return masterkey.NewEnvBackend(filepath.Join(cfg.Blob.EnvironmentDir, dotenvFileName)), nil
	default:
		return nil, fmt.Errorf("setup: unrecognized master key backend %q", cfg.MasterKey.Backend)
	}
}

// generateAndStoreMasterKeys generates a fresh KMS key and signature
// keypair and persists them through provider. The signature keypair is
// stored combined (sig_keypair); [masterkey.Provider.Require] transparently
// splits it into sig_secret/sig_public halves on read.
func generateAndStoreMasterKeys(facade cryptoengine.Facade, provider *masterkey.Provider) error {
	kms, err := facade.GenerateSymmetricEncryptionKey()
	if err != nil {
		return fmt.Errorf("generating kms key: %w", err)
	}
	_, kmsRaw, err := facade.ExportKey(kms)
	if err != nil {
		return fmt.Errorf("exporting kms key: %w", err)
	}
	if err := provider.Store(models.MasterKeyKMS, kmsRaw); err != nil {
		return fmt.Errorf("storing kms key: %w", err)
	}

	sig, err := facade.GenerateSignatureKeypair(nil)
	if err != nil {
		return fmt.Errorf("generating signature keypair: %w", err)
	}
	_, sigRaw, err := facade.ExportKey(sig)
	if err != nil {
		return fmt.Errorf("exporting signature keypair: %w", err)
	}
	if err := provider.Store(models.MasterKeySigKeypair, sigRaw); err != nil {
		return fmt.Errorf("storing signature keypair: %w", err)
	}
	return nil
}

// sealEmptyKeyring creates a brand-new, empty keyring and persists it
// (sealed blob plus signed checksum sidecar) through [keyring.SealAndPersist].
func sealEmptyKeyring(ctx context.Context, cfg *config.StructuredConfig, facade cryptoengine.Facade, provider *masterkey.Provider, fsStore *localfs.Store, log *obslog.Logger) error {
	kms, err := provider.KMSHandle()
	if err != nil {
		return fmt.Errorf("loading kms key: %w", err)
	}
	signingKeypair, err := provider.SignatureKeypairHandle()
	if err != nil {
		return fmt.Errorf("loading signature keypair: %w", err)
	}

	store, err := keyring.Create()
	if err != nil {
		return fmt.Errorf("creating keyring: %w", err)
	}

	keyringPath := cfg.Keyring.Name + ".keyring"
	checksumPath := cfg.Keyring.Name + ".checksum"

	engine := checksum.New(facade)
	if err := keyring.SealAndPersist(ctx, fsStore, facade, kms, engine, signingKeypair, store, keyringPath, checksumPath, models.VisibilityPrivate); err != nil {
		return fmt.Errorf("persisting empty keyring: %w", err)
	}
	log.Info().Str("keyring_path", keyringPath).Str("checksum_path", checksumPath).Msg("wrote empty keyring")
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
