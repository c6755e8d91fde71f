// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import (
	"context"
	"errors"

	kitgrpc "github.com/go-kit/kit/transport/grpc"
	"github.com/ultravioletrs/fog-report/reports"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	getReports kitgrpc.Handler
	reports.UnimplementedFogReportServiceServer
}

var _ reports.FogReportServiceServer = (*grpcServer)(nil)

// NewServer returns new FogReportServiceServer instance.
func NewServer(svc reports.Service) reports.FogReportServiceServer {
	return &grpcServer{
		getReports: kitgrpc.NewServer(
			getReportsEndpoint(svc),
			decodeGetReportsRequest,
			encodeGetReportsResponse,
		),
	}
}

func decodeGetReportsRequest(_ context.Context, grpcReq interface{}) (interface{}, error) {
	req := grpcReq.(*reports.ReportRequest)

	return getReportsReq{
		All: req.GetAll(),
		IDs: req.GetIds(),
	}, nil
}

func encodeGetReportsResponse(_ context.Context, response interface{}) (interface{}, error) {
	res := response.(getReportsRes)

	entries := make([]*reports.Report, 0, len(res.Reports))
	for _, entry := range res.Reports {
		entries = append(entries, &reports.Report{
			Id:        entry.ID,
			Report:    entry.Payload,
			Signature: entry.Signature,
			Chain:     entry.Chain,
		})
	}

	return &reports.ReportResponse{
		Reports: entries,
		Missing: res.Missing,
	}, nil
}

func (s *grpcServer) GetReports(ctx context.Context, req *reports.ReportRequest) (*reports.ReportResponse, error) {
	_, res, err := s.getReports.ServeGRPC(ctx, req)
	if err != nil {
		return nil, encodeError(err)
	}

	return res.(*reports.ReportResponse), nil
}

// encodeError translates domain errors to gRPC status codes.
func encodeError(err error) error {
	switch {
	case errors.Is(err, reports.ErrMalformedEntity):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
