// Package report renders a fleet summary into the fixed three-line
// statistics format consumed by downstream tooling.
package report

import (
	"fmt"
	"os"
	"strings"

	"evalgo.org/fleetsum/models"
)

// Render produces the three summary lines for s, instance types in
// declared order:
//
//	EMPTY: M1=<count>; M2=<count>; M3=<count>;
//	FULL: M1=<count>; M2=<count>; M3=<count>;
//	MOST FILLED: M1=<hosts>,<empty>; M2=<hosts>,<empty>; M3=<hosts>,<empty>;
//
// The labels, separators, and single spaces are a compatibility contract
// and must not change. Every line is newline terminated.
func Render(s *models.FleetSummary) string {
	var b strings.Builder

	b.WriteString("EMPTY:")
	for _, t := range s.Types {
		fmt.Fprintf(&b, " %s=%d;", t.Type, t.EmptyHosts)
	}
	b.WriteString("\n")

	b.WriteString("FULL:")
	for _, t := range s.Types {
		fmt.Fprintf(&b, " %s=%d;", t.Type, t.FullHosts)
	}
	b.WriteString("\n")

	b.WriteString("MOST FILLED:")
	for _, t := range s.Types {
		fmt.Fprintf(&b, " %s=%d,%d;", t.Type, t.MostFilledHosts, t.MostFilledEmptySlots)
	}
	b.WriteString("\n")

	return b.String()
}

// Write renders s and persists it to path. The file is only touched on a
// fully successful run; callers must not reach this after a validation
// failure.
func Write(path string, s *models.FleetSummary) error {
	if err := os.WriteFile(path, []byte(Render(s)), 0644); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}
	return nil
}
