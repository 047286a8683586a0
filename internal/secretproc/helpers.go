// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretproc

import (
	"bytes"
	"encoding/hex"
	"io"
)

func bytesReaderFor(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func hexDecode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
