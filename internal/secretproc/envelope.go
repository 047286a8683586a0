// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretproc

import (
	"encoding/json"
	"fmt"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/models"
)

// PutResult carries everything a caller needs to register a newly written
// secret with the keyring: the persisted record bytes, the base64-encoded
// wrapped DEK to index, and the MAC covering the envelope.
type PutResult struct {
	Record     []byte
	WrappedDEK string
	MAC        []byte
}

// Put implements the Secret Processor write path: generate a fresh DEK,
// encrypt value under it, wrap the DEK's descriptor under kms, MAC the
// resulting envelope under authKey, and return the record ready for the
// blob store plus the fields the keyring needs to index it.
func Put(facade cryptoengine.Facade, kms, authKey cryptoengine.KeyHandle, value any) (PutResult, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return PutResult{}, fmt.Errorf("%w: encoding secret value: %w", ErrSerialization, err)
	}

	dek, err := facade.GenerateSymmetricEncryptionKey()
	if err != nil {
		return PutResult{}, err
	}
	defer cryptoengine.Zero(dek.Raw)

	// Both ciphertext and the wrapped DEK travel through a JSON string
	// field, so they are base64-encoded on the way out — raw ciphertext
	// bytes are not valid UTF-8 and encoding/json would silently mangle
	// them otherwise.
	envelopeEncoding := cryptoengine.Options{Encoding: cryptoengine.EncodingBase64}

	ciphertext, err := facade.EncryptMessage(dek, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive(jsonValue), envelopeEncoding))
	if err != nil {
		return PutResult{}, err
	}

	descriptor := dek.Descriptor()
	descriptorJSON, err := json.Marshal(descriptor)
	if err != nil {
		return PutResult{}, fmt.Errorf("%w: encoding DEK descriptor: %w", ErrSerialization, err)
	}
	wrapped, err := facade.EncryptMessage(kms, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive(descriptorJSON), envelopeEncoding))
	if err != nil {
		return PutResult{}, err
	}

	envelope := models.SecretEnvelope{
		WrappedDEK:       string(wrapped),
		Ciphertext:       string(ciphertext),
		DescriptorPublic: descriptor.DescriptorPublic(),
	}
	envelopeJSON, err := json.Marshal(envelope)
	if err != nil {
		return PutResult{}, fmt.Errorf("%w: encoding envelope: %w", ErrSerialization, err)
	}

	mac, err := facade.Authenticate(authKey, bytesReaderFor(envelopeJSON))
	if err != nil {
		return PutResult{}, err
	}

	return PutResult{
		Record:     joinRecord(mac, envelopeJSON),
		WrappedDEK: string(wrapped),
		MAC:        mac,
	}, nil
}

// Get implements the Secret Processor read path: split the MAC prefix,
// verify it over the exact envelope bytes on record (never re-marshaled),
// unwrap the DEK under kms, and decrypt the ciphertext under the recovered
// DEK. target receives the JSON-decoded cleartext value, identically to
// [encoding/json.Unmarshal]'s contract.
func Get(facade cryptoengine.Facade, kms, authKey cryptoengine.KeyHandle, record []byte, target any) error {
	mac, envelopeJSON, err := splitRecord(record)
	if err != nil {
		return err
	}

	ok, err := facade.VerifyMAC(authKey, bytesReaderFor(envelopeJSON), mac)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAuthenticationFailed
	}

	var envelope models.SecretEnvelope
	if err := json.Unmarshal(envelopeJSON, &envelope); err != nil {
		return fmt.Errorf("%w: decoding envelope: %w", ErrSerialization, err)
	}

	envelopeEncoding := cryptoengine.Options{Encoding: cryptoengine.EncodingBase64}
	descriptorJSON, err := facade.DecryptMessage(kms, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive([]byte(envelope.WrappedDEK)), envelopeEncoding))
	if err != nil {
		return err
	}
	var descriptor models.KeyDescriptor
	if err := json.Unmarshal(descriptorJSON, &descriptor); err != nil {
		return fmt.Errorf("%w: decoding DEK descriptor: %w", ErrSerialization, err)
	}
	rawDEK, err := hexDecode(descriptor.Hex)
	if err != nil {
		return fmt.Errorf("%w: decoding DEK hex: %w", ErrSerialization, err)
	}
	dek, err := facade.ImportKey(descriptor, rawDEK)
	if err != nil {
		return err
	}
	defer cryptoengine.Zero(dek.Raw)

	plaintext, err := facade.DecryptMessage(dek, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive([]byte(envelope.Ciphertext)), envelopeEncoding))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: decoding secret value: %w", ErrSerialization, err)
	}
	return nil
}
