// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ultravioletrs/fog-report/reports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

func testEntries() []reports.StubReport {
	return []reports.StubReport{
		{ID: "node-a", Payload: []byte("payload-a"), Signature: []byte("sig-a"), Chain: [][]byte{[]byte("leaf"), []byte("root")}},
		{ID: "node-b", Payload: []byte("payload-b"), Signature: []byte("sig-b")},
	}
}

func startGRPCServer(t *testing.T, svc reports.Service) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	reports.RegisterFogReportServiceServer(srv, NewServer(svc))

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

func TestGetReports(t *testing.T) {
	registry, err := reports.Load(testEntries())
	require.NoError(t, err)
	conn := startGRPCServer(t, reports.New(registry))
	client := NewClient(conn, time.Second)

	tests := []struct {
		name    string
		req     *reports.ReportRequest
		ids     []string
		missing []string
	}{
		{
			name: "named identifiers in request order",
			req:  &reports.ReportRequest{Ids: []string{"node-b", "node-a"}},
			ids:  []string{"node-b", "node-a"},
		},
		{
			name:    "unknown identifiers land in missing",
			req:     &reports.ReportRequest{Ids: []string{"node-a", "ghost"}},
			ids:     []string{"node-a"},
			missing: []string{"ghost"},
		},
		{
			name: "all sentinel returns load order",
			req:  &reports.ReportRequest{All: true},
			ids:  []string{"node-a", "node-b"},
		},
		{
			name: "zero identifiers without sentinel selects nothing",
			req:  &reports.ReportRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := client.GetReports(context.Background(), tt.req)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(res.GetReports()))
			for _, entry := range res.GetReports() {
				gotIDs = append(gotIDs, entry.GetId())
			}

			if len(tt.ids) == 0 {
				assert.Empty(t, res.GetReports())
			} else {
				assert.Equal(t, tt.ids, gotIDs, "report ids")
			}
			assert.Equal(t, tt.missing, res.GetMissing(), "missing ids")
		})
	}
}

func TestGetReportsPayloadRoundTrip(t *testing.T) {
	entries := testEntries()
	registry, err := reports.Load(entries)
	require.NoError(t, err)
	conn := startGRPCServer(t, reports.New(registry))
	client := reports.NewFogReportServiceClient(conn)

	res, err := client.GetReports(context.Background(), &reports.ReportRequest{Ids: []string{"node-a"}})
	require.NoError(t, err)
	require.Len(t, res.GetReports(), 1)

	got := res.GetReports()[0]
	assert.Equal(t, entries[0].Payload, got.GetReport())
	assert.Equal(t, entries[0].Signature, got.GetSignature())
	assert.Equal(t, entries[0].Chain, got.GetChain())
}

func TestGetReportsInvalidArgument(t *testing.T) {
	svc := &recordingService{}
	conn := startGRPCServer(t, svc)
	client := reports.NewFogReportServiceClient(conn)

	ids := make([]string, reports.MaxQueryIDs+1)
	for i := range ids {
		ids[i] = "id-" + strconv.Itoa(i)
	}

	_, err := client.GetReports(context.Background(), &reports.ReportRequest{Ids: ids})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	// Malformed requests must be rejected before the service is consulted.
	assert.Zero(t, svc.calls)
}

type recordingService struct {
	calls int
}

func (s *recordingService) GetReports(ctx context.Context, query reports.ReportsQuery) (reports.ReportsPage, error) {
	s.calls++
	return reports.ReportsPage{}, nil
}
