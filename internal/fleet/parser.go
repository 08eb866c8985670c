// Package fleet implements the core of the fleet-state summary pipeline:
// parsing and validating report lines, aggregating per-instance-type
// occupancy counters, and resolving the most-filled representative.
//
// The package is pure computation. It never touches the filesystem beyond
// the io.Reader handed to an Aggregator, and every failure is returned as a
// *ValidationError carrying the 1-based line number of the offending input.
package fleet

import (
	"strconv"
	"strings"

	"evalgo.org/fleetsum/models"
)

// fieldSep separates the fields of a fleet-state line.
const fieldSep = ","

// ParseLine parses and validates a single fleet-state line.
//
// The line format is
//
//	<HostID>,<InstanceType>,<NumSlots>,<Slot1>,...,<SlotN>
//
// Rules are checked left to right and the first violation wins, so a line
// with a bad host id AND a bad slot count reports the host id. On failure
// the returned error is always a *ValidationError tagged with lineNumber.
func ParseLine(raw string, lineNumber int) (models.HostRecord, error) {
	// Only the first three separators delimit fixed fields. The remainder
	// is the slot list and may itself contain separators.
	fields := strings.SplitN(raw, fieldSep, 4)
	if len(fields) < 4 {
		return models.HostRecord{}, errFieldCount(lineNumber)
	}

	hostID, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.HostRecord{}, errHostID(lineNumber, fields[0])
	}

	if !models.ValidInstanceType(fields[1]) {
		return models.HostRecord{}, errInstanceType(lineNumber, fields[1])
	}
	instanceType := models.InstanceType(fields[1])

	numSlots, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.HostRecord{}, errNumSlots(lineNumber, fields[2])
	}
	if numSlots < 1 {
		return models.HostRecord{}, errMinSlots(lineNumber, numSlots)
	}

	slotFields := strings.Split(fields[3], fieldSep)
	if len(slotFields) != numSlots {
		return models.HostRecord{}, errSlotCount(lineNumber, len(slotFields), numSlots)
	}

	slots := make([]int, numSlots)
	for i, f := range slotFields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return models.HostRecord{}, errSlotInteger(lineNumber, f)
		}
		if v != 0 && v != 1 {
			return models.HostRecord{}, errSlotRange(lineNumber, f)
		}
		slots[i] = v
	}

	return models.HostRecord{
		ID:       hostID,
		Type:     instanceType,
		NumSlots: numSlots,
		Slots:    slots,
	}, nil
}
