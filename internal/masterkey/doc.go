// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package masterkey loads and persists the process-wide master key
// material — the symmetric KMS key and the asymmetric signature keypair —
// from a configurable named backend (environment or file).
//
// A backend may hold the signature keypair's two halves separately or as
// one combined sig_keypair entry; Provider transparently splits the
// combined form via the crypto facade when a caller asks for just one
// half.
package masterkey
