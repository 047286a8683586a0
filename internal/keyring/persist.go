// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import (
	"context"
	"fmt"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore"
	"github.com/paradisesecurity/secrets-manager/internal/checksum"
	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/models"
)

// SealAndPersist seals s under kms, generates a checksum sidecar over the
// resulting blob with engine and signingKeypair, and writes both to store
// at keyringPath (connection KEYRING) and checksumPath (connection
// CHECKSUM). Both writes must succeed; a failure on either is reported as
// [ErrPersistFailed] with prior on-disk state left unchanged wherever
// possible.
//
// If the keyring blob write succeeds but the sidecar write then fails,
// SealAndPersist attempts to roll back by deleting the just-written
// keyring blob. If that rollback also fails, the two connections are now
// out of sync and [ErrKeyringInconsistent] is returned instead of
// [ErrPersistFailed] so the caller can distinguish a clean failure from
// one that needs manual repair.
func SealAndPersist(
	ctx context.Context,
	store blobstore.Store,
	facade cryptoengine.Facade,
	kms cryptoengine.KeyHandle,
	engine *checksum.Engine,
	signingKeypair cryptoengine.KeyHandle,
	s *Store,
	keyringPath, checksumPath string,
	visibility models.Visibility,
) error {
	blob, err := s.Seal(facade, kms)
	if err != nil {
		return err
	}
	sidecar, err := engine.Generate(blob, signingKeypair)
	if err != nil {
		return err
	}
	sidecarBytes, err := sidecar.Serialize()
	if err != nil {
		return err
	}

	if err := store.Write(ctx, models.ConnectionKeyring, keyringPath, blob, visibility); err != nil {
		return fmt.Errorf("%w: writing keyring blob: %w", ErrPersistFailed, err)
	}

	if err := store.Write(ctx, models.ConnectionChecksum, checksumPath, sidecarBytes, visibility); err != nil {
		if rbErr := store.Delete(ctx, models.ConnectionKeyring, keyringPath); rbErr != nil {
			return fmt.Errorf("%w: writing checksum sidecar failed (%v) and rolling back keyring blob also failed: %w", ErrKeyringInconsistent, err, rbErr)
		}
		return fmt.Errorf("%w: writing checksum sidecar: %w", ErrPersistFailed, err)
	}
	return nil
}
