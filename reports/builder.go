// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package reports

// ReportsQuery selects which stub reports a caller wants. The two request
// shapes are distinct: All set means "every registered report", otherwise IDs
// lists the wanted identifiers. All=false with no identifiers selects
// nothing.
type ReportsQuery struct {
	All bool
	IDs []string
}

// ReportsPage is the reply envelope. Reports holds the matched entries,
// Missing the requested identifiers with no registry entry. Missing is data,
// not an error: callers must be able to distinguish protocol failures from
// reports that are simply unavailable.
type ReportsPage struct {
	Reports []StubReport
	Missing []string
}

// Build projects a query over the registry into a page. For named queries
// matched entries keep request order and unknown identifiers land in Missing;
// for the all sentinel entries come back in registry load order. Build is
// deterministic and never fails.
func Build(registry *Registry, query ReportsQuery) ReportsPage {
	if query.All {
		return ReportsPage{Reports: registry.All()}
	}

	page := ReportsPage{}
	for _, id := range query.IDs {
		entry, ok := registry.Lookup(id)
		if !ok {
			page.Missing = append(page.Missing, id)
			continue
		}
		page.Reports = append(page.Reports, entry)
	}

	return page
}
