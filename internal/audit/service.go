package audit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"evalgo.org/fleetsum/internal/fleet"
)

// Service scans fleet-state reports for validation problems.
type Service struct {
	logger *log.Logger
}

// NewService creates an audit service. A nil logger disables progress
// output.
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{logger: logger}
}

// Scan walks the report from r line by line and collects findings
// according to opts. Validation problems become findings, not errors; the
// returned error is reserved for reader failures.
func (s *Service) Scan(r io.Reader, opts ScanOptions) (*Report, error) {
	report := &Report{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Findings:  []Finding{},
	}

	s.logger.Printf("Starting audit scan %s", report.ID)

	seenHosts := make(map[int]bool)
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		report.LinesScanned = lineNumber

		record, err := fleet.ParseLine(scanner.Text(), lineNumber)
		if err != nil {
			var verr *fleet.ValidationError
			if !errors.As(err, &verr) {
				return nil, fmt.Errorf("unexpected parse failure on line %d: %w", lineNumber, err)
			}
			if s.collect(report, verr, opts) {
				break
			}
			continue
		}

		if seenHosts[record.ID] {
			dup := fleet.DuplicateHostError(lineNumber, record.ID)
			if s.collect(report, dup, opts) {
				break
			}
			continue
		}
		seenHosts[record.ID] = true
		report.HostsAccepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fleet state: %w", err)
	}

	report.Summary = summarize(report.Findings)
	s.logger.Printf("Scan complete: %d lines, %d hosts accepted, %d findings",
		report.LinesScanned, report.HostsAccepted, report.Summary.TotalFindings)

	return report, nil
}

// collect appends a finding and reports whether the scan should stop.
func (s *Service) collect(report *Report, verr *fleet.ValidationError, opts ScanOptions) bool {
	report.Findings = append(report.Findings, Finding{
		ID:       uuid.New().String(),
		Line:     verr.Line,
		Rule:     verr.Rule,
		Severity: severityFor(verr.Rule),
		Message:  verr.Message,
	})
	if opts.FailFast {
		return true
	}
	return opts.MaxFindings > 0 && len(report.Findings) >= opts.MaxFindings
}

// severityFor ranks a rule violation. Missing fields and duplicate hosts
// point at a broken report generator rather than a single bad value.
func severityFor(rule fleet.Rule) Severity {
	switch rule {
	case fleet.RuleFieldCount, fleet.RuleDuplicateHost:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

func summarize(findings []Finding) Summary {
	summary := Summary{
		TotalFindings: len(findings),
		ByRule:        make(map[fleet.Rule]int),
		BySeverity:    make(map[Severity]int),
	}
	for _, f := range findings {
		summary.ByRule[f.Rule]++
		summary.BySeverity[f.Severity]++
	}
	return summary
}
