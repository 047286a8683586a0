// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small general-purpose helpers shared across
// secrets-manager that don't belong to any single component — currently
// just identifier generation for blob-store primary keys.
package utils
