// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paradisesecurity/secrets-manager/models"
)

// FileBackend stores one file per key name under a root directory, hex
// encoded, permission 0600 (private visibility).
type FileBackend struct {
	root string
}

// NewFileBackend constructs a FileBackend rooted at dir. dir must already
// exist; callers are expected to have created it through the blob store's
// Mkdir with private visibility.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{root: dir}
}

func (b *FileBackend) path(name models.MasterKeyName) string {
	return filepath.Join(b.root, string(name))
}

// Get implements [Backend].
func (b *FileBackend) Get(name models.MasterKeyName) ([]byte, bool, error) {
	raw, err := os.ReadFile(b.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: reading %s: %w", ErrLoaderFailed, name, err)
	}
	decoded, err := hex.DecodeString(string(raw))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s is not valid hex: %w", ErrLoaderFailed, name, err)
	}
	return decoded, true, nil
}

// Put implements [Backend]. The file is written with mode 0600 so it is
// never group- or world-readable.
func (b *FileBackend) Put(name models.MasterKeyName, raw []byte) error {
	encoded := hex.EncodeToString(raw)
	if err := os.WriteFile(b.path(name), []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrLoaderFailed, name, err)
	}
	return nil
}
