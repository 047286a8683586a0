// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masterkey

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/paradisesecurity/secrets-manager/models"
)

// envVarPrefix namespaces every master-key environment variable this
// backend reads or writes.
const envVarPrefix = "SECRETS_MANAGER_MASTER_KEY_"

// EnvBackend stores master key material as base64-encoded environment
// variables. Reads prefer the live process environment; if a variable is
// unset there, the backend falls back to a dotenv-style file at path.
// Writes always go to the dotenv file — the running process's own
// environment is never mutated.
type EnvBackend struct {
	path string
}

// NewEnvBackend constructs an EnvBackend backed by the dotenv file at
// path (conventionally `.env` under the ENVIRONMENT logical connection).
func NewEnvBackend(path string) *EnvBackend {
	return &EnvBackend{path: path}
}

func envVarName(name models.MasterKeyName) string {
	return envVarPrefix + strings.ToUpper(string(name))
}

// Get implements [Backend].
func (b *EnvBackend) Get(name models.MasterKeyName) ([]byte, bool, error) {
	varName := envVarName(name)
	if v, ok := os.LookupEnv(varName); ok {
		return decodeEnvValue(varName, v)
	}

	vars, err := godotenv.Read(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: reading %s: %w", ErrLoaderFailed, b.path, err)
	}
	v, ok := vars[varName]
	if !ok {
		return nil, false, nil
	}
	return decodeEnvValue(varName, v)
}

func decodeEnvValue(varName, v string) ([]byte, bool, error) {
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s is not valid base64: %w", ErrLoaderFailed, varName, err)
	}
	return raw, true, nil
}

// Put implements [Backend]. It merges the new value into whatever the
// dotenv file already holds, then rewrites the file — godotenv has no
// incremental append, so an upsert-and-rewrite is the closest equivalent.
func (b *EnvBackend) Put(name models.MasterKeyName, raw []byte) error {
	vars, err := godotenv.Read(b.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: reading %s: %w", ErrLoaderFailed, b.path, err)
	}
	if vars == nil {
		vars = make(map[string]string)
	}
	vars[envVarName(name)] = base64.StdEncoding.EncodeToString(raw)
	if err := godotenv.Write(vars, b.path); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrLoaderFailed, b.path, err)
	}
	return nil
}
