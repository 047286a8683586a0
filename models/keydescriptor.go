// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyDescriptor is the reconstitution tuple for a key handle: enough to
// rebuild a [cryptoengine.KeyHandle] without ever persisting the bundle in
// its typed form. Hex carries the raw key material; the remaining fields
// select which adapter and wire version produced it.
//
// DescriptorPublic is the same tuple with Hex stripped — the shape stored
// unencrypted alongside a wrapped DEK, so a reader can pick the right
// unwrap path before decrypting anything.
type KeyDescriptor struct {
	Hex     string `json:"hex"`
	Type    string `json:"type"`
	Adapter string `json:"adapter"`
	Version string `json:"version"`
}

// DescriptorPublic returns the cleartext-safe projection of d.
func (d KeyDescriptor) DescriptorPublic() DescriptorPublic {
	return DescriptorPublic{Type: d.Type, Adapter: d.Adapter, Version: d.Version}
}

// DescriptorPublic is the non-secret portion of a [KeyDescriptor].
type DescriptorPublic struct {
	Type    string `json:"type"`
	Adapter string `json:"adapter"`
	Version string `json:"version"`
}
