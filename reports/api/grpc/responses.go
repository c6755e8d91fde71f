// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package grpc

import "github.com/ultravioletrs/fog-report/reports"

type getReportsRes struct {
	Reports []reports.StubReport
	Missing []string
}
