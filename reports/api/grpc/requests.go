// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import (
	"fmt"

	"github.com/ultravioletrs/fog-report/reports"
)

type getReportsReq struct {
	All bool
	IDs []string
}

// validate rejects malformed requests before any registry access happens.
func (req getReportsReq) validate() error {
	if !req.All && len(req.IDs) > reports.MaxQueryIDs {
		return fmt.Errorf("%w: %d identifiers exceeds the maximum of %d", reports.ErrMalformedEntity, len(req.IDs), reports.MaxQueryIDs)
	}
	return nil
}
