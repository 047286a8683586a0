// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import "errors"

// Sentinel errors returned by [Store] implementations. Callers should use
// [errors.Is] to match against these values rather than inspecting
// backend-specific error types.
var (
	// ErrNotFound is returned by Read/Open when path does not exist under
	// connection.
	ErrNotFound = errors.New("blobstore: blob not found")

	// ErrAlreadyExists is returned by Mkdir when the directory already
	// exists under connection.
	ErrAlreadyExists = errors.New("blobstore: already exists")

	// ErrUnknownConnection is returned when a connection name was never
	// registered with the Store.
	ErrUnknownConnection = errors.New("blobstore: unknown connection")

	// ErrWriteFailed wraps a low-level write failure (disk, network,
	// constraint violation) so callers can distinguish storage failures
	// from programmer errors like an unknown connection.
	ErrWriteFailed = errors.New("blobstore: write failed")
)
