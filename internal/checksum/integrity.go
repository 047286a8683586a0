// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package checksum

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
)

// Engine is the Keyring Integrity Engine: it generates and verifies the
// checksum sidecar that accompanies every persisted keyring blob.
type Engine struct {
	facade cryptoengine.Facade
}

// New constructs an Engine backed by facade.
func New(facade cryptoengine.Facade) *Engine {
	return &Engine{facade: facade}
}

// Generate computes a keyed BLAKE2b-512 digest of blob — keyed by
// signingKeypair's public half, so Verify can recompute the same digest
// from the public-only half — signs the digest's raw bytes with
// signingKeypair, and returns the resulting [Sidecar]. signingKeypair must
// resolve to a signature keypair (its public half must be recoverable; a
// bare secret-only handle that cannot yield it is rejected).
func (e *Engine) Generate(blob []byte, signingKeypair cryptoengine.KeyHandle) (Sidecar, error) {
	key := signingKeypair.PublicBytes()
	if len(key) == 0 {
		return Sidecar{}, fmt.Errorf("%w: signing keypair has no recoverable public half to key the checksum", cryptoengine.ErrWrongKeyType)
	}
	digest, err := e.facade.Checksum(bytes.NewReader(blob), key)
	if err != nil {
		return Sidecar{}, fmt.Errorf("computing checksum: %w", err)
	}
	sig, err := e.facade.Sign(signingKeypair, bytes.NewReader(digest))
	if err != nil {
		return Sidecar{}, fmt.Errorf("signing checksum: %w", err)
	}
	return Sidecar{
		ChecksumB64:  base64.StdEncoding.EncodeToString(digest),
		SignatureB64: base64.StdEncoding.EncodeToString(sig),
	}, nil
}

// Verify recomputes the keyed digest of blob — keyed the same way as
// Generate, by verifyKeypair's public half — and checks it, in constant
// time, against sidecar's checksum half, then verifies sidecar's signature
// half against the digest under verifyKeypair.
//
// verifyKeypair must resolve to a signature keypair or its public half.
func (e *Engine) Verify(blob []byte, sidecar Sidecar, verifyKeypair cryptoengine.KeyHandle) error {
	key := verifyKeypair.PublicBytes()
	if len(key) == 0 {
		return fmt.Errorf("%w: verify keypair has no recoverable public half to key the checksum", cryptoengine.ErrWrongKeyType)
	}
	digest, err := e.facade.Checksum(bytes.NewReader(blob), key)
	if err != nil {
		return fmt.Errorf("computing checksum: %w", err)
	}
	wantChecksum, err := base64.StdEncoding.DecodeString(sidecar.ChecksumB64)
	if err != nil {
		return fmt.Errorf("%w: checksum half is not valid base64: %w", ErrMalformedSidecar, err)
	}
	if subtle.ConstantTimeCompare(digest, wantChecksum) != 1 {
		return ErrChecksumMismatch
	}

	sig, err := base64.StdEncoding.DecodeString(sidecar.SignatureB64)
	if err != nil {
		return fmt.Errorf("%w: signature half is not valid base64: %w", ErrMalformedSidecar, err)
	}
	ok, err := e.facade.VerifySignature(verifyKeypair, bytes.NewReader(wantChecksum), sig)
	if err != nil {
		return fmt.Errorf("verifying signature: %w", err)
	}
	if !ok {
		return ErrBadSignature
	}
	return nil
}
