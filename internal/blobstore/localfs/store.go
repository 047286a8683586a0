// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package localfs implements [blobstore.Store] on top of a plain
// filesystem tree: one root directory per logical connection, blobs
// addressed by a relative path beneath that root.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore"
	"github.com/paradisesecurity/secrets-manager/models"
)

const (
	dirModePrivate  os.FileMode = 0o700
	dirModePublic   os.FileMode = 0o755
	fileModePrivate os.FileMode = 0o600
	fileModePublic  os.FileMode = 0o644
)

// Store is a [blobstore.Store] backed by one directory per connection.
type Store struct {
	roots map[models.Connection]string
}

// New constructs a Store from a connection-to-directory mapping. Each root
// is created (private, 0700) if it does not already exist.
//
// Returns an error if any root cannot be created or is not a directory.
func New(roots map[models.Connection]string) (*Store, error) {
	for conn, root := range roots {
		info, err := os.Stat(root)
		switch {
		case err == nil:
			if !info.IsDir() {
				return nil, fmt.Errorf("localfs: root for connection %s is not a directory: %s", conn, root)
			}
		case errors.Is(err, os.ErrNotExist):
			if err := os.MkdirAll(root, dirModePrivate); err != nil {
				return nil, fmt.Errorf("localfs: creating root for connection %s: %w", conn, err)
			}
		default:
			return nil, fmt.Errorf("localfs: stat root for connection %s: %w", conn, err)
		}
	}
	return &Store{roots: roots}, nil
}

var _ blobstore.Store = (*Store)(nil)

// resolve maps (connection, path) to an absolute filesystem path, rejecting
// any path that would escape the connection's root via "..".
func (s *Store) resolve(connection models.Connection, path string) (string, error) {
	root, ok := s.roots[connection]
	if !ok {
		return "", fmt.Errorf("%w: %s", blobstore.ErrUnknownConnection, connection)
	}
	cleaned := filepath.Clean("/" + path)
	full := filepath.Join(root, cleaned)
	if !strings.HasPrefix(full, filepath.Clean(root)+string(os.PathSeparator)) && full != filepath.Clean(root) {
		return "", fmt.Errorf("localfs: path %q escapes connection root", path)
	}
	return full, nil
}

// Has implements [blobstore.Store].
func (s *Store) Has(ctx context.Context, connection models.Connection, path string) (bool, error) {
	full, err := s.resolve(connection, path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("localfs: stat %s: %w", full, err)
}

// Read implements [blobstore.Store].
func (s *Store) Read(ctx context.Context, connection models.Connection, path string) ([]byte, error) {
	full, err := s.resolve(connection, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", blobstore.ErrNotFound, connection, path)
	}
	if err != nil {
		return nil, fmt.Errorf("localfs: read %s: %w", full, err)
	}
	return data, nil
}

// Open implements [blobstore.Store].
func (s *Store) Open(ctx context.Context, connection models.Connection, path string) (io.ReadCloser, error) {
	full, err := s.resolve(connection, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", blobstore.ErrNotFound, connection, path)
	}
	if err != nil {
		return nil, fmt.Errorf("localfs: open %s: %w", full, err)
	}
	return f, nil
}

// Write implements [blobstore.Store].
func (s *Store) Write(ctx context.Context, connection models.Connection, path string, data []byte, visibility models.Visibility) error {
	full, err := s.resolve(connection, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), dirModePrivate); err != nil {
		return fmt.Errorf("%w: mkdir parent of %s: %v", blobstore.ErrWriteFailed, full, err)
	}
	if err := os.WriteFile(full, data, fileMode(visibility)); err != nil {
		return fmt.Errorf("%w: write %s: %v", blobstore.ErrWriteFailed, full, err)
	}
	return nil
}

// WriteStream implements [blobstore.Store].
func (s *Store) WriteStream(ctx context.Context, connection models.Connection, path string, r io.Reader, visibility models.Visibility) error {
	full, err := s.resolve(connection, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), dirModePrivate); err != nil {
		return fmt.Errorf("%w: mkdir parent of %s: %v", blobstore.ErrWriteFailed, full, err)
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode(visibility))
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", blobstore.ErrWriteFailed, full, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("%w: streaming write to %s: %v", blobstore.ErrWriteFailed, full, err)
	}
	return nil
}

// Delete implements [blobstore.Store].
func (s *Store) Delete(ctx context.Context, connection models.Connection, path string) error {
	full, err := s.resolve(connection, path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localfs: delete %s: %w", full, err)
	}
	return nil
}

// Mkdir implements [blobstore.Store].
func (s *Store) Mkdir(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error {
	full, err := s.resolve(connection, path)
	if err != nil {
		return err
	}
	info, statErr := os.Stat(full)
	if statErr == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", blobstore.ErrAlreadyExists, full)
	}
	if err := os.MkdirAll(full, dirMode(visibility)); err != nil {
		return fmt.Errorf("localfs: mkdir %s: %w", full, err)
	}
	return nil
}

// SetVisibility implements [blobstore.Store].
func (s *Store) SetVisibility(ctx context.Context, connection models.Connection, path string, visibility models.Visibility) error {
	full, err := s.resolve(connection, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s/%s", blobstore.ErrNotFound, connection, path)
		}
		return fmt.Errorf("localfs: stat %s: %w", full, err)
	}
	mode := fileMode(visibility)
	if info.IsDir() {
		mode = dirMode(visibility)
	}
	if err := os.Chmod(full, mode); err != nil {
		return fmt.Errorf("localfs: chmod %s: %w", full, err)
	}
	return nil
}

func fileMode(v models.Visibility) os.FileMode {
	if v == models.VisibilityPublic {
		return fileModePublic
	}
	return fileModePrivate
}

func dirMode(v models.Visibility) os.FileMode {
	if v == models.VisibilityPublic {
		return dirModePublic
	}
	return dirModePrivate
}
