package fleet

import "fmt"

// Rule identifies which validation rule a fleet-state line violated.
type Rule string

const (
	// RuleFieldCount indicates a line with fewer than four comma-separated fields
	RuleFieldCount Rule = "field_count"

	// RuleHostID indicates a host id that is not an integer
	RuleHostID Rule = "host_id"

	// RuleInstanceType indicates an instance type outside the closed set
	RuleInstanceType Rule = "instance_type"

	// RuleNumSlots indicates a slot count that is not an integer
	RuleNumSlots Rule = "num_slots"

	// RuleMinSlots indicates a declared slot count below one
	RuleMinSlots Rule = "min_slots"

	// RuleSlotCount indicates a mismatch between declared and actual slot fields
	RuleSlotCount Rule = "slot_count"

	// RuleSlotInteger indicates a slot field that is not an integer
	RuleSlotInteger Rule = "slot_integer"

	// RuleSlotRange indicates an integer slot field other than 0 or 1
	RuleSlotRange Rule = "slot_range"

	// RuleDuplicateHost indicates a host id seen earlier in the same report
	RuleDuplicateHost Rule = "duplicate_host"
)

// ValidationError describes why a fleet-state report was rejected. It is
// terminal for the whole run: no statistics are produced once one is raised.
type ValidationError struct {
	// Line is the 1-based number of the offending line.
	Line int `json:"line"`

	// Rule is the violated validation rule.
	Rule Rule `json:"rule"`

	// Message is the operator-facing description.
	Message string `json:"message"`
}

// Error implements the error interface. The rendered form is the process
// output contract, consumed verbatim by operators and scripts.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// NewValidationError creates a validation error for the given line.
func NewValidationError(line int, rule Rule, message string) *ValidationError {
	return &ValidationError{
		Line:    line,
		Rule:    rule,
		Message: message,
	}
}

// Common error constructors
func errFieldCount(line int) *ValidationError {
	return NewValidationError(line, RuleFieldCount,
		"The line does not contain enough fields.")
}

func errHostID(line int, raw string) *ValidationError {
	return NewValidationError(line, RuleHostID,
		fmt.Sprintf("The host id '%s' is not an integer.", raw))
}

func errInstanceType(line int, raw string) *ValidationError {
	return NewValidationError(line, RuleInstanceType,
		fmt.Sprintf("Unknown instance type '%s'", raw))
}

func errNumSlots(line int, raw string) *ValidationError {
	return NewValidationError(line, RuleNumSlots,
		fmt.Sprintf("The number of slots '%s' is not an integer.", raw))
}

func errMinSlots(line, declared int) *ValidationError {
	return NewValidationError(line, RuleMinSlots,
		fmt.Sprintf("The number of slots (%d) must be at least 1.", declared))
}

func errSlotCount(line, actual, declared int) *ValidationError {
	return NewValidationError(line, RuleSlotCount,
		fmt.Sprintf("The number of slot information entries (%d) does not match "+
			"the number of slots specified (%d).", actual, declared))
}

func errSlotInteger(line int, raw string) *ValidationError {
	return NewValidationError(line, RuleSlotInteger,
		fmt.Sprintf("The slot information field '%s' is not an integer.", raw))
}

func errSlotRange(line int, raw string) *ValidationError {
	return NewValidationError(line, RuleSlotRange,
		fmt.Sprintf("The slot information field '%s' is not 0 or 1.", raw))
}

// DuplicateHostError reports a host id encountered for the second time.
// The line number is that of the second occurrence. Exported because the
// audit scanner raises it alongside the parser's own failures.
func DuplicateHostError(line, hostID int) *ValidationError {
	return NewValidationError(line, RuleDuplicateHost,
		fmt.Sprintf("Host ID '%d' specified more than once.", hostID))
}
