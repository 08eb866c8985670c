package fleet

import (
	"bufio"
	"fmt"
	"io"

	"evalgo.org/fleetsum/models"
)

// Aggregator folds validated host records into per-instance-type counters.
// It is strictly single-pass: lines go in once, in file order, and the
// first validation failure poisons the whole run.
//
// The zero Aggregator is not usable; construct with NewAggregator.
type Aggregator struct {
	hosts      map[models.InstanceType]int
	emptyHosts map[models.InstanceType]int
	fullHosts  map[models.InstanceType]int
	histograms map[models.InstanceType]map[int]int
	seenHosts  map[int]bool
	totalHosts int
}

// NewAggregator returns an aggregator with zeroed counters for every
// member of the closed instance type set.
func NewAggregator() *Aggregator {
	a := &Aggregator{
		hosts:      make(map[models.InstanceType]int),
		emptyHosts: make(map[models.InstanceType]int),
		fullHosts:  make(map[models.InstanceType]int),
		histograms: make(map[models.InstanceType]map[int]int),
		seenHosts:  make(map[int]bool),
	}
	for _, t := range models.InstanceTypes {
		a.hosts[t] = 0
		a.emptyHosts[t] = 0
		a.fullHosts[t] = 0
		a.histograms[t] = make(map[int]int)
	}
	return a
}

// ProcessLine parses one line and folds the resulting record into the
// counters. The returned error, if any, is a *ValidationError tagged with
// lineNumber; once an error is returned the aggregate must be discarded.
func (a *Aggregator) ProcessLine(raw string, lineNumber int) error {
	record, err := ParseLine(raw, lineNumber)
	if err != nil {
		return err
	}

	// Duplicate detection runs after parsing, so a malformed duplicate
	// reports the parse failure. The error carries the line number of the
	// second occurrence.
	if a.seenHosts[record.ID] {
		return DuplicateHostError(lineNumber, record.ID)
	}
	a.seenHosts[record.ID] = true

	if record.Empty() {
		a.emptyHosts[record.Type]++
	}
	if record.Full() {
		a.fullHosts[record.Type]++
	}

	// Every host lands in exactly one histogram bucket, full and empty
	// hosts included.
	a.histograms[record.Type][record.EmptySlots()]++
	a.hosts[record.Type]++
	a.totalHosts++

	return nil
}

// Process consumes lines in order with 1-based numbering, stopping at the
// first validation failure.
func (a *Aggregator) Process(lines []string) error {
	for i, line := range lines {
		if err := a.ProcessLine(line, i+1); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom consumes a whole fleet-state report from r, one record per
// line. Validation failures come back as *ValidationError; reader failures
// are wrapped I/O errors.
func (a *Aggregator) ReadFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 1
	for scanner.Scan() {
		if err := a.ProcessLine(scanner.Text(), lineNumber); err != nil {
			return err
		}
		lineNumber++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read fleet state: %w", err)
	}
	return nil
}

// Summary resolves the aggregate into its exported form, one TypeSummary
// per instance type in declared order. It reads but never mutates the
// counters, so repeated calls on the same aggregate return equal values.
// Only meaningful after an error-free pass over the input.
func (a *Aggregator) Summary() *models.FleetSummary {
	summary := &models.FleetSummary{
		Types:      make([]models.TypeSummary, 0, len(models.InstanceTypes)),
		TotalHosts: a.totalHosts,
	}
	for _, t := range models.InstanceTypes {
		histogram := make(map[int]int, len(a.histograms[t]))
		for k, v := range a.histograms[t] {
			histogram[k] = v
		}
		mostFilledHosts, mostFilledEmpty := MostFilled(histogram)
		summary.Types = append(summary.Types, models.TypeSummary{
			Type:                 t,
			Hosts:                a.hosts[t],
			EmptyHosts:           a.emptyHosts[t],
			FullHosts:            a.fullHosts[t],
			MostFilledHosts:      mostFilledHosts,
			MostFilledEmptySlots: mostFilledEmpty,
			EmptySlotHistogram:   histogram,
		})
	}
	return summary
}
