// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package reports

import (
	"errors"
	"fmt"
)

// ErrDuplicateIdentifier indicates that two stub reports passed to Load
// share the same identifier. The registry refuses to load an ambiguous set.
var ErrDuplicateIdentifier = errors.New("duplicate report identifier")

// StubReport is one canned report entry. The payload, signature and chain are
// opaque placeholder bytes returned verbatim to callers; none of them carry
// cryptographic meaning.
type StubReport struct {
	ID        string   `json:"id"`
	Payload   []byte   `json:"payload"`
	Signature []byte   `json:"signature,omitempty"`
	Chain     [][]byte `json:"chain,omitempty"`
}

// Registry is the immutable, load-once collection of stub reports. It is
// built exactly once before serving begins, which makes concurrent Lookup
// and All calls safe without locks.
type Registry struct {
	entries map[string]StubReport
	order   []string
}

// Load builds a registry from the given entries. Identifiers must be unique;
// the empty identifier is an ordinary, valid key. Load is the only mutation
// point of a registry.
func Load(entries []StubReport) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]StubReport, len(entries)),
		order:   make([]string, 0, len(entries)),
	}

	for _, entry := range entries {
		if _, ok := r.entries[entry.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, entry.ID)
		}
		r.entries[entry.ID] = entry
		r.order = append(r.order, entry.ID)
	}

	return r, nil
}

// Lookup returns the entry registered under id. Absence is an expected
// outcome, not an error.
func (r *Registry) Lookup(id string) (StubReport, bool) {
	entry, ok := r.entries[id]
	return entry, ok
}

// All returns every entry in load order.
func (r *Registry) All() []StubReport {
	all := make([]StubReport, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.entries[id])
	}

	return all
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.order)
}
