// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

// Sensitive wraps a byte slice that must never be logged, printed, or
// serialized as itself. Call [Sensitive.Close] as soon as the caller is
// done with the value — it overwrites the backing array with zeros so the
// cleartext does not linger in memory after use.
type Sensitive struct {
	b []byte
}

// NewSensitive wraps b. Ownership of b transfers to the returned Sensitive;
// callers must not retain or mutate their own reference afterward.
func NewSensitive(b []byte) Sensitive {
	return Sensitive{b: b}
}

// Bytes returns the wrapped plaintext. The returned slice aliases the
// receiver's backing array — it becomes invalid after [Sensitive.Close].
func (s Sensitive) Bytes() []byte {
	return s.b
}

// Len returns the length of the wrapped plaintext.
func (s Sensitive) Len() int {
	return len(s.b)
}

// Close zeroizes the backing array. Safe to call more than once.
func (s Sensitive) Close() {
	for i := range s.b {
		s.b[i] = 0
	}
}

// String never reveals the wrapped bytes, so Sensitive is safe to embed in
// structs that get printed or logged by accident.
func (s Sensitive) String() string {
	return "[REDACTED]"
}

// MarshalJSON refuses to serialize Sensitive, so it can never leak into a
// JSON-encoded request or response by being embedded in a larger struct.
func (s Sensitive) MarshalJSON() ([]byte, error) {
	return nil, errCannotMarshalSensitive
}

// Zero overwrites raw with zeros in place. Used for DEK and KEK buffers
// that are plain []byte rather than a Sensitive wrapper.
func Zero(raw []byte) {
	for i := range raw {
		raw[i] = 0
	}
}
