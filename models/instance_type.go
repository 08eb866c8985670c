package models

// InstanceType identifies the kind of workload a host is dedicated to.
// Every host in a fleet-state report runs instances of exactly one type.
//
// The set of types is closed: a report line naming anything outside this
// enumeration is a validation failure, never a new category.
type InstanceType string

const (
	// InstanceM1 is the first-generation instance type.
	InstanceM1 InstanceType = "M1"

	// InstanceM2 is the second-generation instance type.
	InstanceM2 InstanceType = "M2"

	// InstanceM3 is the third-generation instance type.
	InstanceM3 InstanceType = "M3"
)

// InstanceTypes lists every known instance type. The order is significant:
// it drives the column order of every summary output, so it must not be
// rebuilt from a map or sorted.
var InstanceTypes = []InstanceType{InstanceM1, InstanceM2, InstanceM3}

// ValidInstanceType reports whether s names a member of the closed
// instance type set.
func ValidInstanceType(s string) bool {
	for _, t := range InstanceTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// String returns the wire name of the instance type.
func (t InstanceType) String() string {
	return string(t)
}
