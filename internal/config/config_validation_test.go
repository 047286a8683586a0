// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_AccumulatesEveryViolation verifies that validate joins every
// failing group into one error rather than stopping at the first, so an
// operator sees the full set of problems in a single run.
func TestValidate_AccumulatesEveryViolation(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyringConfig)
	assert.ErrorIs(t, err, ErrInvalidMasterKeyConfig)
	assert.ErrorIs(t, err, ErrInvalidBlobConfig)
}

// TestValidate_Valid verifies a fully populated config passes.
func TestValidate_Valid(t *testing.T) {
	cfg := &StructuredConfig{
		Keyring:   Keyring{Name: "default"},
		MasterKey: MasterKey{Backend: "env"},
		Blob:      validBlobConfig(),
	}
	assert.NoError(t, cfg.validate())
}

// TestValidate_SingleViolation verifies that a config failing only one
// group does not also report the others.
func TestValidate_SingleViolation(t *testing.T) {
	cfg := &StructuredConfig{
		Keyring:   Keyring{Name: "default"},
		MasterKey: MasterKey{Backend: "not-a-backend"},
		Blob:      validBlobConfig(),
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMasterKeyConfig)
	assert.False(t, errors.Is(err, ErrInvalidKeyringConfig))
	assert.False(t, errors.Is(err, ErrInvalidBlobConfig))
}
