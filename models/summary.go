package models

// TypeSummary aggregates every host of a single instance type.
type TypeSummary struct {
	// Type is the instance type this summary covers.
	Type InstanceType `json:"instance_type" yaml:"instance_type"`

	// Hosts is the total number of hosts of this type.
	Hosts int `json:"hosts" yaml:"hosts"`

	// EmptyHosts counts hosts with every slot unoccupied.
	EmptyHosts int `json:"empty_hosts" yaml:"empty_hosts"`

	// FullHosts counts hosts with every slot occupied.
	FullHosts int `json:"full_hosts" yaml:"full_hosts"`

	// MostFilledHosts is the number of hosts sharing the smallest
	// positive empty-slot count, or 0 when no host has room.
	MostFilledHosts int `json:"most_filled_hosts" yaml:"most_filled_hosts"`

	// MostFilledEmptySlots is that smallest positive empty-slot count,
	// or 0 when no host has room.
	MostFilledEmptySlots int `json:"most_filled_empty_slots" yaml:"most_filled_empty_slots"`

	// EmptySlotHistogram maps an empty-slot count to the number of hosts
	// exhibiting it. Every host of the type lands in exactly one bucket.
	EmptySlotHistogram map[int]int `json:"empty_slot_histogram" yaml:"empty_slot_histogram"`
}

// FleetSummary is the aggregate over a complete, valid fleet-state report.
// Types appears in the declared instance type order and always contains one
// entry per member of InstanceTypes, including types with zero hosts.
type FleetSummary struct {
	// Types holds the per-type summaries in declared order.
	Types []TypeSummary `json:"types" yaml:"types"`

	// TotalHosts is the number of host records across all types.
	TotalHosts int `json:"total_hosts" yaml:"total_hosts"`
}

// ByType returns the summary for the given instance type, or nil when the
// type is not part of the closed set.
func (s *FleetSummary) ByType(t InstanceType) *TypeSummary {
	for i := range s.Types {
		if s.Types[i].Type == t {
			return &s.Types[i]
		}
	}
	return nil
}
