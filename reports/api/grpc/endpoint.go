// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ultravioletrs/fog-report/reports"
)

func getReportsEndpoint(svc reports.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(getReportsReq)

		if err := req.validate(); err != nil {
			return getReportsRes{}, err
		}

		page, err := svc.GetReports(ctx, reports.ReportsQuery{All: req.All, IDs: req.IDs})
		if err != nil {
			return getReportsRes{}, err
		}

		return getReportsRes{Reports: page.Reports, Missing: page.Missing}, nil
	}
}
