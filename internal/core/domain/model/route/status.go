package route

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery route.
//
// State transitions:
//
//	pending ──> processing ──> shipped ──> delivered
//
// Progression is strictly forward and admin-driven; a route never moves
// backward. Routes in shipped or delivered status no longer accept order
// assignments.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of a newly created route.
	Pending

	// Processing indicates the route's orders are being prepared.
	Processing

	// Shipped indicates the route is out for delivery. The route is
	// closed for new assignments from this point on.
	Shipped

	// Delivered is the final status: every attached order was handed
	// over on the route's delivery date.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Processing:    "processing",
		Shipped:       "shipped",
		Delivered:     "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
	}
}

// StatusFromString parses a status from its string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("route status " + s)
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("route status")
	}
	return nil
}

// String returns the lowercase name of the status. Implements
// fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the route still accepts order assignments.
// Only pending and processing routes are open.
func (s Status) IsOpen() bool {
	return s == Pending || s == Processing
}

// ChangeTo validates the forward-only progression and returns the new
// status. Backward moves, no-op moves and undefined targets are rejected.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if target <= s {
		return StatusUnknown, errs.NewInvalidStateTransitionError("route", s.String(), "change to "+target.String())
	}
	return target, nil
}
