package models

// HostRecord is one validated line of a fleet-state report: a single host,
// the instance type it is dedicated to, and the occupancy of each of its
// capacity slots.
//
// A record is created by the parser and never mutated afterwards. Parsing
// guarantees:
//   - NumSlots >= 1
//   - len(Slots) == NumSlots
//   - every slot value is 0 (empty) or 1 (occupied)
//
// Example source line and its record:
//
//	7,M2,4,0,1,1,0  ->  HostRecord{ID: 7, Type: M2, NumSlots: 4, Slots: [0 1 1 0]}
type HostRecord struct {
	// ID is the unique host identifier. Uniqueness across a whole report
	// is enforced by the aggregator, not the parser.
	ID int `json:"id" yaml:"id"`

	// Type is the instance type this host runs.
	Type InstanceType `json:"instance_type" yaml:"instance_type"`

	// NumSlots is the declared slot count, always >= 1.
	NumSlots int `json:"num_slots" yaml:"num_slots"`

	// Slots holds the occupancy of each slot in declared order, 0 or 1.
	Slots []int `json:"slots" yaml:"slots"`
}

// Empty reports whether every slot on the host is unoccupied.
func (h HostRecord) Empty() bool {
	for _, s := range h.Slots {
		if s != 0 {
			return false
		}
	}
	return true
}

// Full reports whether every slot on the host is occupied. Because
// NumSlots >= 1, a host is never both Empty and Full.
func (h HostRecord) Full() bool {
	for _, s := range h.Slots {
		if s != 1 {
			return false
		}
	}
	return true
}

// FilledSlots returns the number of occupied slots.
func (h HostRecord) FilledSlots() int {
	n := 0
	for _, s := range h.Slots {
		n += s
	}
	return n
}

// EmptySlots returns the number of unoccupied slots.
func (h HostRecord) EmptySlots() int {
	return h.NumSlots - h.FilledSlots()
}
