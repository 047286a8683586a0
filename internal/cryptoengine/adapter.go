// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cryptoengine

// Argon2Params tunes the Argon2id password-based key derivation performed
// by [Facade.DeriveKeyFromPassword]. The zero value is not valid on its
// own; [New] substitutes [DefaultArgon2Params] for any field left at zero.
type Argon2Params struct {
	// Time is the number of Argon2id passes over memory.
	Time uint32
	// MemoryKiB is the amount of memory used, in kibibytes.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the length in bytes of the derived key.
	KeyLen uint32
}

// DefaultArgon2Params are the source adapter's OWASP-recommended
// parameters (time=1, memory=64MiB, parallelism=4, keyLen=32).
var DefaultArgon2Params = Argon2Params{
	Time:      1,
	MemoryKiB: 64 * 1024,
	Threads:   4,
	KeyLen:    32,
}

func (p Argon2Params) withDefaults() Argon2Params {
	d := DefaultArgon2Params
	if p.Time != 0 {
		d.Time = p.Time
	}
	if p.MemoryKiB != 0 {
		d.MemoryKiB = p.MemoryKiB
	}
	if p.Threads != 0 {
		d.Threads = p.Threads
	}
	if p.KeyLen != 0 {
		d.KeyLen = p.KeyLen
	}
	return d
}

// adapter is the stdcrypto implementation of [Facade]: AES-256-GCM for
// symmetric encryption, NaCl sealed boxes for asymmetric encryption,
// Ed25519 for signatures, keyed BLAKE2b for MACs and BLAKE2b-512 (keyed
// whenever a key is supplied) for checksums, Argon2id for password-based
// key derivation. Beyond its
// Argon2id tuning it carries no state of its own — every method is a pure
// function of its arguments — so a single instance is safe to share across
// goroutines.
type adapter struct {
	argon2Params Argon2Params
}

// New constructs the stdcrypto [Facade] implementation. An optional
// [Argon2Params] overrides the default Argon2id tuning; zero fields in a
// supplied Argon2Params fall back to [DefaultArgon2Params].
func New(params ...Argon2Params) Facade {
	p := Argon2Params{}
	if len(params) > 0 {
		p = params[0]
	}
	return &adapter{argon2Params: p.withDefaults()}
}

var _ Facade = (*adapter)(nil)
