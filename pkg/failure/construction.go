package failure

import "fmt"

// DuplicateValueError is raised eagerly when a matcher whose
// expected-element set forbids duplicates is constructed with
// two elements equal under the active equality. It is raised
// before any actual value is inspected.
type DuplicateValueError struct {
	// Value is the first duplicated expected element, in
	// argument order.
	Value any

	// Pos is the construction site.
	Pos Position
}

// Error describes the duplicated value and the construction
// site.
func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf(
		"expected values must be distinct, "+
			"but %v appears more than once (%s)",
		e.Value, e.Pos,
	)
}

// ToleranceError is raised eagerly when a plus-or-minus matcher
// is constructed with a zero or negative tolerance.
type ToleranceError struct {
	Tolerance float64
	Pos       Position
}

// Error describes the invalid tolerance and the construction
// site.
func (e *ToleranceError) Error() string {
	return fmt.Sprintf(
		"tolerance must be positive, got %v (%s)",
		e.Tolerance, e.Pos,
	)
}

// UnknownCapabilityError is raised eagerly when a capability
// matcher is constructed against a probe name that has not been
// registered.
type UnknownCapabilityError struct {
	Name string
	Pos  Position
}

// Error names the missing capability probe.
func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf(
		"no capability probe registered for %q (%s)",
		e.Name, e.Pos,
	)
}
