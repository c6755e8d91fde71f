// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package reports

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformedEntity indicates a malformed request specification, e.g. an
// identifier list exceeding the per-request cap.
var ErrMalformedEntity = errors.New("malformed entity specification")

// MaxQueryIDs caps the number of identifiers a single query may name.
const MaxQueryIDs = 256

// Service specifies an API that must be fullfiled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// GetReports resolves a query against the registry. Unknown identifiers
	// are returned in the page's Missing list rather than failing the call.
	GetReports(ctx context.Context, query ReportsQuery) (ReportsPage, error)
}

type reportsService struct {
	registry *Registry
}

var _ Service = (*reportsService)(nil)

// New instantiates the fog report stub service over the given registry.
func New(registry *Registry) Service {
	return &reportsService{registry: registry}
}

func (svc *reportsService) GetReports(ctx context.Context, query ReportsQuery) (ReportsPage, error) {
	if !query.All && len(query.IDs) > MaxQueryIDs {
		return ReportsPage{}, fmt.Errorf("%w: %d identifiers exceeds the maximum of %d", ErrMalformedEntity, len(query.IDs), MaxQueryIDs)
	}

	return Build(svc.registry, query), nil
}
