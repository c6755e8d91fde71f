// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package sdk

import (
	"context"
	"log/slog"

	"github.com/ultravioletrs/fog-report/reports"
)

// SDK is the facade client applications use to talk to a fog report stub
// server.
type SDK interface {
	// GetReports fetches the stub reports registered under the given
	// identifiers. Unknown identifiers come back in the second return value.
	GetReports(ctx context.Context, ids []string) ([]reports.StubReport, []string, error)

	// GetAllReports fetches every report the server has registered.
	GetAllReports(ctx context.Context) ([]reports.StubReport, error)
}

type reportsSDK struct {
	client reports.FogReportServiceClient
	logger *slog.Logger
}

func NewSDK(log *slog.Logger, client reports.FogReportServiceClient) SDK {
	return &reportsSDK{
		client: client,
		logger: log,
	}
}

func (sdk *reportsSDK) GetReports(ctx context.Context, ids []string) ([]reports.StubReport, []string, error) {
	res, err := sdk.client.GetReports(ctx, &reports.ReportRequest{Ids: ids})
	if err != nil {
		sdk.logger.Error("Failed to call GetReports RPC")
		return nil, nil, err
	}

	return fromWire(res.GetReports()), res.GetMissing(), nil
}

func (sdk *reportsSDK) GetAllReports(ctx context.Context) ([]reports.StubReport, error) {
	res, err := sdk.client.GetReports(ctx, &reports.ReportRequest{All: true})
	if err != nil {
		sdk.logger.Error("Failed to call GetReports RPC")
		return nil, err
	}

	return fromWire(res.GetReports()), nil
}

func fromWire(entries []*reports.Report) []reports.StubReport {
	out := make([]reports.StubReport, 0, len(entries))
	for _, entry := range entries {
		out = append(out, reports.StubReport{
			ID:        entry.GetId(),
			Payload:   entry.GetReport(),
			Signature: entry.GetSignature(),
			Chain:     entry.GetChain(),
		})
	}

	return out
}
