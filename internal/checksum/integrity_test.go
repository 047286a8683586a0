// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package checksum

import (
	"errors"
	"testing"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
)

func TestGenerateVerify_RoundTrip(t *testing.T) {
	facade := cryptoengine.New()
	keypair, err := facade.GenerateSignatureKeypair(nil)
	if err != nil {
		t.Fatalf("GenerateSignatureKeypair: %v", err)
	}
	engine := New(facade)
	blob := []byte("encrypted keyring blob contents")

	sidecar, err := engine.Generate(blob, keypair)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := engine.Verify(blob, sidecar, keypair); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerify_TamperedBlob_ChecksumMismatch(t *testing.T) {
	facade := cryptoengine.New()
	keypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := New(facade)
	blob := []byte("encrypted keyring blob contents")

	sidecar, err := engine.Generate(blob, keypair)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tampered := append([]byte{}, blob...)
	tampered[0] ^= 0x01

	err = engine.Verify(tampered, sidecar, keypair)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("got err %v, want ErrChecksumMismatch", err)
	}
}

// TestVerify_TamperedSignature_BadSignature covers the scenario of flipping
// a bit in the signature half of an on-disk sidecar: load must fail with
// BadSignature before any secret is ever read.
func TestVerify_TamperedSignature_BadSignature(t *testing.T) {
	facade := cryptoengine.New()
	keypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := New(facade)
	blob := []byte("encrypted keyring blob contents")

	sidecar, err := engine.Generate(blob, keypair)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	serialized, err := sidecar.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	serialized[90] ^= 0x01 // byte 90 falls inside the signature half

	reparsed, err := Parse(serialized)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	err = engine.Verify(blob, reparsed, keypair)
	if !errors.Is(err, ErrBadSignature) && !errors.Is(err, ErrMalformedSidecar) {
		t.Fatalf("got err %v, want ErrBadSignature or ErrMalformedSidecar", err)
	}
}

// TestVerify_WrongVerificationKey_ChecksumMismatch covers presenting the
// wrong signature keypair to Verify. Since the checksum itself is keyed by
// the signing keypair's public half, a different keypair changes the
// recomputed digest before the signature is ever checked, surfacing as
// ErrChecksumMismatch rather than ErrBadSignature.
func TestVerify_WrongVerificationKey_ChecksumMismatch(t *testing.T) {
	facade := cryptoengine.New()
	keypair, _ := facade.GenerateSignatureKeypair(nil)
	other, _ := facade.GenerateSignatureKeypair(nil)
	engine := New(facade)
	blob := []byte("encrypted keyring blob contents")

	sidecar, err := engine.Generate(blob, keypair)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	err = engine.Verify(blob, sidecar, other)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("got err %v, want ErrChecksumMismatch", err)
	}
}

func TestParse_WrongSize_MalformedSidecar(t *testing.T) {
	_, err := Parse([]byte("too short"))
	if !errors.Is(err, ErrMalformedSidecar) {
		t.Fatalf("got err %v, want ErrMalformedSidecar", err)
	}
}

func TestParseSerialize_RoundTrip(t *testing.T) {
	facade := cryptoengine.New()
	keypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := New(facade)
	blob := []byte("encrypted keyring blob contents")

	sidecar, err := engine.Generate(blob, keypair)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	serialized, err := sidecar.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(serialized) != SidecarSize {
		t.Fatalf("got %d bytes, want %d", len(serialized), SidecarSize)
	}
	reparsed, err := Parse(serialized)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if reparsed != sidecar {
		t.Fatal("Parse(Serialize(sidecar)) != sidecar")
	}
}
