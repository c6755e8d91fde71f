// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []StubReport {
	return []StubReport{
		{ID: "node-a", Payload: []byte("payload-a"), Signature: []byte("sig-a"), Chain: [][]byte{[]byte("leaf-a"), []byte("root")}},
		{ID: "node-b", Payload: []byte("payload-b"), Signature: []byte("sig-b")},
		{ID: "node-c", Payload: []byte("payload-c")},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		entries []StubReport
		err     error
	}{
		{
			name:    "unique identifiers",
			entries: testEntries(),
			err:     nil,
		},
		{
			name:    "empty set",
			entries: nil,
			err:     nil,
		},
		{
			name: "empty identifier is a valid key",
			entries: []StubReport{
				{ID: "", Payload: []byte("default")},
				{ID: "named", Payload: []byte("named")},
			},
			err: nil,
		},
		{
			name: "duplicate identifiers",
			entries: []StubReport{
				{ID: "node-a", Payload: []byte("first")},
				{ID: "node-b", Payload: []byte("other")},
				{ID: "node-a", Payload: []byte("second")},
			},
			err: ErrDuplicateIdentifier,
		},
		{
			name: "duplicate empty identifiers",
			entries: []StubReport{
				{ID: ""},
				{ID: ""},
			},
			err: ErrDuplicateIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := Load(tt.entries)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, registry)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, registry)
			assert.Equal(t, len(tt.entries), registry.Len())
		})
	}
}

func TestLookup(t *testing.T) {
	entries := testEntries()
	registry, err := Load(entries)
	require.NoError(t, err)

	for _, entry := range entries {
		got, ok := registry.Lookup(entry.ID)
		assert.True(t, ok)
		assert.Equal(t, entry, got)
	}

	_, ok := registry.Lookup("unknown")
	assert.False(t, ok)

	_, ok = registry.Lookup("")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	entries := testEntries()
	registry, err := Load(entries)
	require.NoError(t, err)

	assert.Equal(t, entries, registry.All())
}

func TestRegistryIdempotence(t *testing.T) {
	registry, err := Load(testEntries())
	require.NoError(t, err)

	first := registry.All()
	second := registry.All()
	assert.Equal(t, first, second)

	a1, ok1 := registry.Lookup("node-a")
	a2, ok2 := registry.Lookup("node-a")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, a1, a2)
}
