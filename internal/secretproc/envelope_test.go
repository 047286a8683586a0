// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretproc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
)

func setup(t *testing.T) (cryptoengine.Facade, cryptoengine.KeyHandle, cryptoengine.KeyHandle) {
	t.Helper()
	facade := cryptoengine.New()
	kms, err := facade.GenerateSymmetricEncryptionKey()
	require.NoError(t, err)
	authKey, err := facade.GenerateSymmetricAuthKey()
	require.NoError(t, err)
	return facade, kms, authKey
}

// TestPutGet_RoundTrip covers scenario 1: put a plain string secret and
// get the same value back with the same auth key.
func TestPutGet_RoundTrip(t *testing.T) {
	facade, kms, authKey := setup(t)

	result, err := Put(facade, kms, authKey, "s3cret!")
	require.NoError(t, err)

	var got string
	require.NoError(t, Get(facade, kms, authKey, result.Record, &got))
	require.Equal(t, "s3cret!", got)
}

// TestPutGet_ComplexValue covers scenario 5: a structured JSON value
// round-trips element-wise.
func TestPutGet_ComplexValue(t *testing.T) {
	facade, kms, authKey := setup(t)

	type payload struct {
		User  string   `json:"u"`
		Roles []string `json:"roles"`
		N     int      `json:"n"`
	}
	want := payload{User: "admin", Roles: []string{"r", "w"}, N: 42}

	result, err := Put(facade, kms, authKey, want)
	require.NoError(t, err)

	var got payload
	require.NoError(t, Get(facade, kms, authKey, result.Record, &got))
	require.Equal(t, want, got)
}

// TestGet_TamperedRecord covers a single-byte flip anywhere in a secret
// record: AuthenticationFailure, no partial decryption.
func TestGet_TamperedRecord(t *testing.T) {
	facade, kms, authKey := setup(t)

	result, err := Put(facade, kms, authKey, "s3cret!")
	require.NoError(t, err)

	tampered := append([]byte{}, result.Record...)
	tampered[len(tampered)-1] ^= 0x01

	var got string
	err = Get(facade, kms, authKey, tampered, &got)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	require.Empty(t, got)
}

// TestGet_WrongAuthKey covers scenario 6: a different auth key than was
// used at put time must yield AuthenticationFailure, not a decryption
// error.
func TestGet_WrongAuthKey(t *testing.T) {
	facade, kms, authKey := setup(t)
	otherAuthKey, err := facade.GenerateSymmetricAuthKey()
	require.NoError(t, err)

	result, err := Put(facade, kms, authKey, "s3cret!")
	require.NoError(t, err)

	var got string
	err = Get(facade, kms, otherAuthKey, result.Record, &got)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

// TestGet_CrossSecretMACSwap covers scenario 3: swapping the 64-byte MAC
// prefixes of two secret records causes both subsequent Get calls to fail.
func TestGet_CrossSecretMACSwap(t *testing.T) {
	facade, kms, authKey := setup(t)

	a, err := Put(facade, kms, authKey, "secret-a")
	require.NoError(t, err)
	b, err := Put(facade, kms, authKey, "secret-b")
	require.NoError(t, err)

	macA, envA, err := splitRecord(a.Record)
	require.NoError(t, err)
	macB, envB, err := splitRecord(b.Record)
	require.NoError(t, err)

	swappedA := joinRecord(macB, envA)
	swappedB := joinRecord(macA, envB)

	var got string
	require.ErrorIs(t, Get(facade, kms, authKey, swappedA, &got), ErrAuthenticationFailed)
	require.ErrorIs(t, Get(facade, kms, authKey, swappedB, &got), ErrAuthenticationFailed)
}

func TestGet_RecordTooShort_MalformedRecord(t *testing.T) {
	facade, kms, authKey := setup(t)
	var got string
	err := Get(facade, kms, authKey, []byte("short"), &got)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("got err %v, want ErrMalformedRecord", err)
	}
}
