// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyring implements the keyring lifecycle: an in-memory Store
// mapping vault -> secret key -> wrapped DEK, sealed into an
// AEAD-encrypted blob under the KMS key and loaded back from one.
//
// The on-disk JSON shape ([models.Keyring]) stores MACs as a flattened
// list rather than nesting them alongside each wrapped DEK. Store
// recovers the (vault, key) <-> MAC correlation by re-deriving the same
// canonical traversal order (vault names sorted, then secret keys within
// each vault sorted) on both sides — see toModel and fromModel in
// lifecycle.go.
package keyring
