// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

import (
	"encoding/hex"
	"fmt"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/models"
)

// Provider loads and persists the process-wide master key material from a
// single configured Backend, splitting a combined signature keypair into
// its public/secret halves via the crypto facade when the backend only
// holds the combined form.
type Provider struct {
	backend Backend
	facade  cryptoengine.Facade
}

// New constructs a Provider over backend, resolving keys through facade.
func New(backend Backend, facade cryptoengine.Facade) *Provider {
	return &Provider{backend: backend, facade: facade}
}

// Require returns the raw bytes for name, transparently splitting
// sig_secret/sig_public out of a stored sig_keypair if the backend never
// held the split halves directly.
func (p *Provider) Require(name models.MasterKeyName) ([]byte, error) {
	raw, found, err := p.backend.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoaderFailed, err)
	}
	if found {
		return raw, nil
	}

	switch name {
	case models.MasterKeySigSecret, models.MasterKeySigPublic:
		combined, found, err := p.backend.Get(models.MasterKeySigKeypair)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoaderFailed, err)
		}
		if !found {
			return nil, ErrMasterKeyMissing
		}
		return p.splitKeypairHalf(name, combined)
	case models.MasterKeyKMS, models.MasterKeySigKeypair:
		return nil, ErrMasterKeyMissing
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
	}
}

// splitKeypairHalf reconstructs a signature keypair handle from its raw,
// concatenated on-disk form (secret half ‖ public half — the same layout
// [cryptoengine.adapter.ImportKey] expects for a signature keypair) and
// returns the requested half's raw bytes.
func (p *Provider) splitKeypairHalf(name models.MasterKeyName, combined []byte) ([]byte, error) {
	descriptor := models.KeyDescriptor{
		Type:    cryptoengine.KeyTypeAsymmetricSignatureKeypair.String(),
		Adapter: cryptoengine.AdapterTag,
		Version: cryptoengine.Version,
	}
	keypair, err := p.facade.ImportKey(descriptor, combined)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoaderFailed, err)
	}
	public, secret, ok := keypair.Split()
	if !ok {
		return nil, fmt.Errorf("%w: sig_keypair material did not split", ErrLoaderFailed)
	}
	if name == models.MasterKeySigPublic {
		return public.Raw, nil
	}
	return secret.Raw, nil
}

// Store writes raw under name to the active backend.
func (p *Provider) Store(name models.MasterKeyName, raw []byte) error {
	return p.backend.Put(name, raw)
}

// IsInitialized reports whether every name in [models.MasterKeyNames]
// resolves.
func (p *Provider) IsInitialized() bool {
	for _, name := range models.MasterKeyNames {
		if _, err := p.Require(name); err != nil {
			return false
		}
	}
	return true
}

// KMSHandle reconstructs the KMS key as a usable [cryptoengine.KeyHandle].
func (p *Provider) KMSHandle() (cryptoengine.KeyHandle, error) {
	raw, err := p.Require(models.MasterKeyKMS)
	if err != nil {
		return cryptoengine.KeyHandle{}, err
	}
	descriptor := models.KeyDescriptor{
		Hex:     hex.EncodeToString(raw),
		Type:    cryptoengine.KeyTypeSymmetricEncryption.String(),
		Adapter: cryptoengine.AdapterTag,
		Version: cryptoengine.Version,
	}
	return p.facade.ImportKey(descriptor, raw)
}

// SignatureKeypairHandle reconstructs the full signature keypair as a
// usable [cryptoengine.KeyHandle], splitting sig_keypair if that is all
// the backend holds.
func (p *Provider) SignatureKeypairHandle() (cryptoengine.KeyHandle, error) {
	secret, err := p.Require(models.MasterKeySigSecret)
	if err != nil {
		return cryptoengine.KeyHandle{}, err
	}
	public, err := p.Require(models.MasterKeySigPublic)
	if err != nil {
		return cryptoengine.KeyHandle{}, err
	}
	descriptor := models.KeyDescriptor{
		Type:    cryptoengine.KeyTypeAsymmetricSignatureKeypair.String(),
		Adapter: cryptoengine.AdapterTag,
		Version: cryptoengine.Version,
	}
	return p.facade.ImportKey(descriptor, append(append([]byte{}, secret...), public...))
}
