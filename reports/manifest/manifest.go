// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads stub report definitions from a JSON manifest file.
// The manifest is the single load source of the registry; it is read once at
// startup and never re-read.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ultravioletrs/fog-report/reports"
)

var (
	// ErrManifestMissing indicates that no manifest path was provided.
	ErrManifestMissing = errors.New("no reports manifest path provided")

	errManifestOpen   = errors.New("failed to open reports manifest")
	errManifestDecode = errors.New("failed to decode reports manifest json")
)

// Read parses the manifest at path into stub report entries, in file order.
// Byte fields (payload, signature, chain links) are base64 in the file, per
// encoding/json convention. Identifier uniqueness is left to the registry.
func Read(path string) ([]reports.StubReport, error) {
	if path == "" {
		return nil, ErrManifestMissing
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errManifestOpen, err)
	}
	defer f.Close()

	var entries []reports.StubReport
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", errManifestDecode, err)
	}

	return entries, nil
}
