// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package reports

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReports(t *testing.T) {
	entries := testEntries()
	registry, err := Load(entries)
	require.NoError(t, err)
	svc := New(registry)

	tests := []struct {
		name    string
		query   ReportsQuery
		reports []StubReport
		missing []string
		err     error
	}{
		{
			name:    "named identifiers in request order",
			query:   ReportsQuery{IDs: []string{"node-b", "node-a"}},
			reports: []StubReport{entries[1], entries[0]},
			missing: nil,
		},
		{
			name:    "unknown identifiers land in missing",
			query:   ReportsQuery{IDs: []string{"node-a", "ghost"}},
			reports: []StubReport{entries[0]},
			missing: []string{"ghost"},
		},
		{
			name:    "only unknown identifiers",
			query:   ReportsQuery{IDs: []string{"ghost-1", "ghost-2"}},
			reports: nil,
			missing: []string{"ghost-1", "ghost-2"},
		},
		{
			name:    "all sentinel returns load order",
			query:   ReportsQuery{All: true},
			reports: entries,
			missing: nil,
		},
		{
			name:    "all sentinel ignores identifiers",
			query:   ReportsQuery{All: true, IDs: []string{"ghost"}},
			reports: entries,
			missing: nil,
		},
		{
			name:    "zero identifiers without sentinel selects nothing",
			query:   ReportsQuery{},
			reports: nil,
			missing: nil,
		},
		{
			name:    "repeated identifiers are returned repeatedly",
			query:   ReportsQuery{IDs: []string{"node-a", "node-a"}},
			reports: []StubReport{entries[0], entries[0]},
			missing: nil,
		},
		{
			name:  "oversized identifier list",
			query: ReportsQuery{IDs: manyIDs(MaxQueryIDs + 1)},
			err:   ErrMalformedEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.GetReports(context.Background(), tt.query)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.reports, page.Reports)
			assert.Equal(t, tt.missing, page.Missing)
		})
	}
}

func TestGetReportsMaxIdentifiers(t *testing.T) {
	registry, err := Load(nil)
	require.NoError(t, err)
	svc := New(registry)

	// Exactly at the cap is still well-formed.
	page, err := svc.GetReports(context.Background(), ReportsQuery{IDs: manyIDs(MaxQueryIDs)})
	require.NoError(t, err)
	assert.Len(t, page.Missing, MaxQueryIDs)
}

func TestGetReportsDeterminism(t *testing.T) {
	registry, err := Load(testEntries())
	require.NoError(t, err)
	svc := New(registry)

	query := ReportsQuery{IDs: []string{"node-c", "ghost", "node-a"}}
	first, err := svc.GetReports(context.Background(), query)
	require.NoError(t, err)
	second, err := svc.GetReports(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDefaultReport(t *testing.T) {
	registry, err := Load([]StubReport{
		{ID: "", Payload: []byte("default-report")},
		{ID: "node-a", Payload: []byte("payload-a")},
	})
	require.NoError(t, err)

	page := Build(registry, ReportsQuery{IDs: []string{""}})
	require.Len(t, page.Reports, 1)
	assert.Equal(t, []byte("default-report"), page.Reports[0].Payload)
	assert.Empty(t, page.Missing)
}

func manyIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "id-" + strconv.Itoa(i)
	}
	return ids
}
