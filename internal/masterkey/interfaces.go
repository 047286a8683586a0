// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

//go:generate mockgen -source=interfaces.go -destination=mock/backend_mock.go -package=mock

import "github.com/paradisesecurity/secrets-manager/models"

// Backend is a named key/value store for raw master-key bytes. A backend
// never interprets the bytes it holds — splitting a combined keypair into
// halves is the Provider's job, done through the crypto facade.
type Backend interface {
	// Get returns the raw bytes stored under name, or found=false if
	// nothing is stored there.
	Get(name models.MasterKeyName) (raw []byte, found bool, err error)
	// Put writes raw under name, creating or overwriting it.
	Put(name models.MasterKeyName, raw []byte) error
}
