// Package audit provides a lint-style scanner over fleet-state reports.
// Unlike the strict summary pipeline, which aborts on the first invalid
// line, the audit scanner can walk the whole file and collect every
// finding, so an operator can fix a broken report in one pass.
package audit

import (
	"time"

	"evalgo.org/fleetsum/internal/fleet"
)

// Severity represents how disruptive a finding is to the data set.
type Severity string

const (
	// SeverityMedium indicates a single malformed value on one line
	SeverityMedium Severity = "medium"

	// SeverityHigh indicates a structural problem (missing fields or a
	// duplicate host) that usually means the report generator is broken
	SeverityHigh Severity = "high"
)

// Finding is a single validation problem located in the scanned report.
type Finding struct {
	// ID uniquely identifies this finding
	ID string `json:"id"`

	// Line is the 1-based line number of the offending input
	Line int `json:"line"`

	// Rule is the violated validation rule
	Rule fleet.Rule `json:"rule"`

	// Severity indicates how disruptive the finding is
	Severity Severity `json:"severity"`

	// Message is the operator-facing description
	Message string `json:"message"`
}

// Summary provides aggregated scan statistics.
type Summary struct {
	// TotalFindings is the count of all findings
	TotalFindings int `json:"total_findings"`

	// ByRule breaks down findings by violated rule
	ByRule map[fleet.Rule]int `json:"by_rule"`

	// BySeverity breaks down findings by severity
	BySeverity map[Severity]int `json:"by_severity"`
}

// Report contains the results of one audit scan.
type Report struct {
	// ID uniquely identifies this scan
	ID string `json:"id"`

	// Timestamp when the scan was performed
	Timestamp time.Time `json:"timestamp"`

	// LinesScanned is the number of input lines visited
	LinesScanned int `json:"lines_scanned"`

	// HostsAccepted is the number of lines that passed every rule
	HostsAccepted int `json:"hosts_accepted"`

	// Findings contains all detected problems in line order
	Findings []Finding `json:"findings"`

	// Summary provides aggregated statistics
	Summary Summary `json:"summary"`
}

// Clean reports whether the scan found no problems.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// ScanOptions controls audit scan behavior.
type ScanOptions struct {
	// FailFast stops the scan at the first finding, mirroring the strict
	// summary pipeline.
	FailFast bool

	// MaxFindings caps collection; 0 means unlimited. The scan stops once
	// the cap is reached.
	MaxFindings int
}
