// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ultravioletrs/fog-report/reports"
)

var _ reports.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    reports.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc reports.Service, logger *slog.Logger) reports.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) GetReports(ctx context.Context, query reports.ReportsQuery) (page reports.ReportsPage, err error) {
	defer func(begin time.Time) {
		message := fmt.Sprintf("Method GetReports took %s to complete", time.Since(begin))
		if err != nil {
			lm.logger.Warn(fmt.Sprintf("%s with error: %s", message, err))
			return
		}
		lm.logger.Info(fmt.Sprintf("%s without errors", message))
	}(time.Now())

	return lm.svc.GetReports(ctx, query)
}
