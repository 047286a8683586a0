// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SecretEnvelope is the JSON object produced by the secret processor's
// write path and consumed by its read path. It is the exact byte
// sequence that gets MAC-authenticated — never re-marshaled before
// the MAC is checked, so a reader must keep the original bytes around
// rather than decode-then-reencode.
type SecretEnvelope struct {
	WrappedDEK       string           `json:"wrapped_dek"`
	Ciphertext       string           `json:"ciphertext"`
	DescriptorPublic DescriptorPublic `json:"descriptor_public"`
}
