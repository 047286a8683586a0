// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paradisesecurity/secrets-manager/models"
)

func TestFileBackend_GetMissing(t *testing.T) {
	b := NewFileBackend(t.TempDir())
	_, found, err := b.Get(models.MasterKeyKMS)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("Get reported found=true for a file that was never written")
	}
}

func TestFileBackend_PutGet_RoundTrip(t *testing.T) {
	b := NewFileBackend(t.TempDir())
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	if err := b.Put(models.MasterKeyKMS, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, found, err := b.Get(models.MasterKeyKMS)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get reported found=false after Put")
	}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFileBackend_Put_PrivatePermissions(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(dir)
	if err := b.Put(models.MasterKeyKMS, []byte{0x01}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, string(models.MasterKeyKMS)))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("got mode %v, want 0600", info.Mode().Perm())
	}
}
