// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secretproc implements envelope encryption for individual secret
// values: a fresh DEK per write, the value encrypted under the DEK, the
// DEK's descriptor wrapped under the keyring's KMS key, and the whole
// bundle MAC-authenticated before it ever reaches the blob store.
//
// The MAC covers the exact envelope bytes written to disk, never a
// re-marshaled copy — Get verifies against the bytes it actually read, so
// a reader with a different (but semantically equivalent) JSON encoder
// can never produce a spurious match or a spurious mismatch.
package secretproc
