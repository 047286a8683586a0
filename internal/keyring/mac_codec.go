// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import "encoding/hex"

// macToString and macFromString are the wire encoding for a MAC stored in
// [models.Keyring.Macs] — hex, matching the encoding used everywhere else
// a key handle's raw bytes cross into JSON.
func macToString(mac []byte) string {
	return hex.EncodeToString(mac)
}

func macFromString(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
