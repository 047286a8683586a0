// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package checksum

import "fmt"

// checksumHalfSize and signatureHalfSize are the base64 (standard,
// padded) encodings of a 64-byte BLAKE2b-512 digest and a 64-byte Ed25519
// signature respectively. Both encode to 88 bytes, which is why the
// concatenation below lands on exactly [SidecarSize].
const (
	checksumHalfSize  = 88
	signatureHalfSize = 88
	// SidecarSize is the fixed on-disk size of a checksum sidecar file:
	// the base64 checksum half followed directly by the base64 signature
	// half, with no separator.
	SidecarSize = checksumHalfSize + signatureHalfSize
)

// Sidecar is the parsed form of a `.checksum` file: a base64-encoded,
// keyed BLAKE2b-512 digest of the keyring blob (keyed by the signature
// keypair's public half), and a base64-encoded Ed25519 signature over
// that digest's raw bytes.
type Sidecar struct {
	ChecksumB64  string
	SignatureB64 string
}

// Parse splits a 176-byte sidecar blob into its checksum and signature
// halves. It performs no base64 decoding or cryptographic validation —
// callers use [Engine.Verify] for that.
func Parse(blob []byte) (Sidecar, error) {
	if len(blob) != SidecarSize {
		return Sidecar{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSidecar, SidecarSize, len(blob))
	}
	return Sidecar{
		ChecksumB64:  string(blob[:checksumHalfSize]),
		SignatureB64: string(blob[checksumHalfSize:]),
	}, nil
}

// Serialize renders s back into its 176-byte on-disk form.
func (s Sidecar) Serialize() ([]byte, error) {
	if len(s.ChecksumB64) != checksumHalfSize {
		return nil, fmt.Errorf("%w: checksum half must be %d bytes, got %d", ErrMalformedSidecar, checksumHalfSize, len(s.ChecksumB64))
	}
	if len(s.SignatureB64) != signatureHalfSize {
		return nil, fmt.Errorf("%w: signature half must be %d bytes, got %d", ErrMalformedSidecar, signatureHalfSize, len(s.SignatureB64))
	}
	blob := make([]byte, 0, SidecarSize)
	blob = append(blob, s.ChecksumB64...)
	blob = append(blob, s.SignatureB64...)
	return blob, nil
}
