// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/models"
)

// entry is the internal, vault-shaped representation of a single stored
// DEK: its hex-encoded wrapped form plus the MAC covering it. The wire
// format flattens these into [models.Keyring]'s parallel Vault/Macs
// fields; Store keeps them paired so lookups and mutations never need to
// recompute the flattening.
type entry struct {
	wrappedDEK string
	mac        []byte
}

// Store is the in-memory, mutable form of a keyring: a set of vaults, each
// mapping a secret key to its wrapped DEK and MAC. All mutating methods are
// safe for concurrent use; a write never leaves the map in a state where
// the number of MAC entries disagrees with the number of (vault, key)
// pairs.
type Store struct {
	mu       sync.Mutex
	uniqueID string
	vaults   map[string]map[string]entry
}

// Create builds a brand-new, empty Store with a fresh unique id.
func Create() (*Store, error) {
	id, err := newUniqueID()
	if err != nil {
		return nil, err
	}
	return &Store{uniqueID: id, vaults: make(map[string]map[string]entry)}, nil
}

// UniqueID returns the keyring's identifier.
func (s *Store) UniqueID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uniqueID
}

// InsertDek stores the wrapped DEK and MAC for (vault, key). It refuses to
// overwrite an existing entry unless replace is true.
func (s *Store) InsertDek(vault, key, wrappedDEKHex string, mac []byte, replace bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vaults[vault] == nil {
		s.vaults[vault] = make(map[string]entry)
	}
	if _, exists := s.vaults[vault][key]; exists && !replace {
		return ErrSecretExists
	}
	s.vaults[vault][key] = entry{wrappedDEK: wrappedDEKHex, mac: append([]byte{}, mac...)}
	return nil
}

// LookupDek returns the wrapped DEK and MAC stored for (vault, key).
func (s *Store) LookupDek(vault, key string) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byKey, ok := s.vaults[vault]
	if !ok {
		return "", nil, ErrEntryNotFound
	}
	e, ok := byKey[key]
	if !ok {
		return "", nil, ErrEntryNotFound
	}
	return e.wrappedDEK, append([]byte{}, e.mac...), nil
}

// Remove deletes the entry stored for (vault, key).
func (s *Store) Remove(vault, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byKey, ok := s.vaults[vault]
	if !ok {
		return ErrEntryNotFound
	}
	if _, ok := byKey[key]; !ok {
		return ErrEntryNotFound
	}
	delete(byKey, key)
	if len(byKey) == 0 {
		delete(s.vaults, vault)
	}
	return nil
}

// sortedVaultNames and sortedKeys give the canonical traversal order used
// both to build the flattened Macs list and to rebuild Store from it: vault
// names sorted lexically, then secret keys within each vault sorted
// lexically.
func sortedVaultNames(vaults map[string]map[string]entry) []string {
	names := make([]string, 0, len(vaults))
	for name := range vaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(byKey map[string]entry) []string {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toModel renders the Store's current state into the canonical,
// checksum-stable [models.Keyring] JSON shape.
func (s *Store) toModel() models.Keyring {
	vault := make(map[string]map[string]string, len(s.vaults))
	macs := make([]string, 0)
	for _, vaultName := range sortedVaultNames(s.vaults) {
		byKey := s.vaults[vaultName]
		vault[vaultName] = make(map[string]string, len(byKey))
		for _, key := range sortedKeys(byKey) {
			e := byKey[key]
			vault[vaultName][key] = e.wrappedDEK
			macs = append(macs, macToString(e.mac))
		}
	}
	return models.Keyring{UniqueID: s.uniqueID, Vault: vault, Macs: macs}
}

// fromModel rebuilds a Store's vault map from a decoded [models.Keyring],
// re-deriving the canonical traversal order over Vault and pairing each
// (vault, key) with the corresponding element of Macs. Returns
// ErrSerialization if the required uniqueId field is missing or empty, and
// ErrInconsistent if the number of MACs does not equal the number of
// (vault, key) pairs.
func fromModel(m models.Keyring) (*Store, error) {
	if m.UniqueID == "" {
		return nil, fmt.Errorf("%w: missing required field uniqueId", ErrSerialization)
	}
	s := &Store{uniqueID: m.UniqueID, vaults: make(map[string]map[string]entry)}

	vaultNames := make([]string, 0, len(m.Vault))
	for name := range m.Vault {
		vaultNames = append(vaultNames, name)
	}
	sort.Strings(vaultNames)

	idx := 0
	for _, vaultName := range vaultNames {
		byKey := m.Vault[vaultName]
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		s.vaults[vaultName] = make(map[string]entry, len(keys))
		for _, key := range keys {
			if idx >= len(m.Macs) {
				return nil, fmt.Errorf("%w: have %d macs, need at least %d", ErrInconsistent, len(m.Macs), idx+1)
			}
			mac, err := macFromString(m.Macs[idx])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
			}
			s.vaults[vaultName][key] = entry{wrappedDEK: byKey[key], mac: mac}
			idx++
		}
	}
	if idx != len(m.Macs) {
		return nil, fmt.Errorf("%w: have %d macs, total entries %d", ErrInconsistent, len(m.Macs), idx)
	}
	return s, nil
}

// Seal serializes the Store to its canonical JSON form and encrypts it
// under kms, producing the exact byte content of a `.keyring` file.
func (s *Store) Seal(facade cryptoengine.Facade, kms cryptoengine.KeyHandle) ([]byte, error) {
	s.mu.Lock()
	model := s.toModel()
	s.mu.Unlock()

	plaintext, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	ciphertext, err := facade.EncryptMessage(kms, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive(plaintext), cryptoengine.Options{}))
	if err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// Load decrypts blob under kms and reconstructs a Store from the resulting
// canonical JSON, failing with ErrSerialization if the required uniqueId
// field is missing or empty, and with ErrInconsistent if the recovered
// Macs list does not correlate one-to-one with the (vault, key) pairs in
// Vault.
func Load(facade cryptoengine.Facade, kms cryptoengine.KeyHandle, blob []byte) (*Store, error) {
	plaintext, err := facade.DecryptMessage(kms, cryptoengine.NewMessageRequest(cryptoengine.NewSensitive(blob), cryptoengine.Options{}))
	if err != nil {
		return nil, err
	}
	var model models.Keyring
	if err := json.Unmarshal(plaintext, &model); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return fromModel(model)
}
