// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/endpoint"
	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"github.com/ultravioletrs/fog-report/reports"
	"google.golang.org/grpc"
)

const svcName = "fog_report.FogReportService"

type grpcClient struct {
	getReports endpoint.Endpoint
	timeout    time.Duration
}

var _ reports.FogReportServiceClient = (*grpcClient)(nil)

// NewClient returns new gRPC client instance.
func NewClient(conn *grpc.ClientConn, timeout time.Duration) reports.FogReportServiceClient {
	return &grpcClient{
		getReports: kitgrpc.NewClient(
			conn,
			svcName,
			"GetReports",
			encodeGetReportsRequest,
			decodeGetReportsResponse,
			reports.ReportResponse{},
		).Endpoint(),
		timeout: timeout,
	}
}

func (c *grpcClient) GetReports(ctx context.Context, req *reports.ReportRequest, _ ...grpc.CallOption) (*reports.ReportResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.getReports(ctx, req)
	if err != nil {
		return nil, err
	}

	return res.(*reports.ReportResponse), nil
}

// encodeGetReportsRequest is a transport/grpc.EncodeRequestFunc that passes
// the wire request through unchanged.
func encodeGetReportsRequest(_ context.Context, request interface{}) (interface{}, error) {
	req, ok := request.(*reports.ReportRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", request)
	}

	return req, nil
}

// decodeGetReportsResponse is a transport/grpc.DecodeResponseFunc that passes
// the wire response through unchanged.
func decodeGetReportsResponse(_ context.Context, grpcResponse interface{}) (interface{}, error) {
	res, ok := grpcResponse.(*reports.ReportResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type: %T", grpcResponse)
	}

	return res, nil
}
