// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package api

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/ultravioletrs/fog-report/reports"
)

var _ reports.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     reports.Service
}

// MetricsMiddleware instruments core service by tracking request count and
// latency.
func MetricsMiddleware(svc reports.Service, counter metrics.Counter, latency metrics.Histogram) reports.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) GetReports(ctx context.Context, query reports.ReportsQuery) (reports.ReportsPage, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get_reports").Add(1)
		ms.latency.With("method", "get_reports").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.GetReports(ctx, query)
}
