// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ultravioletrs/fog-report/reports"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		entries []reports.StubReport
		wantErr bool
	}{
		{
			name: "valid manifest",
			content: `[
				{"id": "node-a", "payload": "cGF5bG9hZC1h", "signature": "c2lnLWE=", "chain": ["bGVhZg==", "cm9vdA=="]},
				{"id": "node-b", "payload": "cGF5bG9hZC1i"}
			]`,
			entries: []reports.StubReport{
				{ID: "node-a", Payload: []byte("payload-a"), Signature: []byte("sig-a"), Chain: [][]byte{[]byte("leaf"), []byte("root")}},
				{ID: "node-b", Payload: []byte("payload-b")},
			},
		},
		{
			name:    "empty manifest",
			content: `[]`,
			entries: []reports.StubReport{},
		},
		{
			name: "default report with empty identifier",
			content: `[
				{"id": "", "payload": "ZGVmYXVsdA=="}
			]`,
			entries: []reports.StubReport{
				{ID: "", Payload: []byte("default")},
			},
		},
		{
			name:    "corrupted manifest",
			content: `not json`,
			wantErr: true,
		},
		{
			name:    "wrong top-level shape",
			content: `{"id": "node-a"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)

			entries, err := Read(path)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.entries, entries)
		})
	}
}

func TestReadMissingPath(t *testing.T) {
	_, err := Read("")
	assert.ErrorIs(t, err, ErrManifestMissing)
}

func TestReadNonexistentFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
