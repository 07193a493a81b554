package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// state machine with defined transitions so orders follow the correct
// fulfillment workflow.
//
// State transitions:
//
//	pending ──> processing ──> shipped ──> delivered ──> return_requested ──> returned
//	   │             │            │                            │
//	   └─────────────┴────────────┴──> cancellation_requested  └──> delivered (reject)
//	   │             │            │            │    │
//	   └─────────────┴────────────┴──> cancelled    └──> prior status (reject)
//
// Forward progression (pending -> processing -> shipped -> delivered) is
// driven by the attached delivery route. A cancel request goes straight
// to cancelled while no route is attached; once a route is attached it
// becomes cancellation_requested and needs admin review. cancelled and
// returned are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Processing indicates fulfillment work has started on the order.
	Processing

	// Shipped indicates the order left the warehouse on its route.
	Shipped

	// Delivered indicates the order reached the customer. Delivery seeds
	// the return window clock.
	Delivered

	// CancellationRequested indicates a customer asked to cancel while a
	// delivery route was already attached; an admin must approve or reject.
	CancellationRequested

	// Cancelled is terminal: the order was cancelled either directly or
	// after admin approval.
	Cancelled

	// ReturnRequested indicates a customer asked to return a delivered
	// order within the return window; an admin must approve or reject.
	ReturnRequested

	// Returned is terminal: the return was approved by an admin.
	Returned
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		Pending:               "pending",
		Processing:            "processing",
		Shipped:               "shipped",
		Delivered:             "delivered",
		CancellationRequested: "cancellation_requested",
		Cancelled:             "cancelled",
		ReturnRequested:       "return_requested",
		Returned:              "returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:               "pending",
		Processing:            "processing",
		Shipped:               "shipped",
		Delivered:             "delivered",
		CancellationRequested: "cancellation_requested",
		Cancelled:             "cancelled",
		ReturnRequested:       "return_requested",
		Returned:              "returned",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing orders from persistence or request payloads.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("order status " + s)
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the lowercase name of the status as persisted and
// displayed. Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOperational reports whether the status is part of the forward
// fulfillment progression (pending, processing, shipped). Operational
// orders can still be cancelled and advanced by their route.
func (s Status) IsOperational() bool {
	return s == Pending || s == Processing || s == Shipped
}

// IsTerminal reports whether the status ends the cancel/return axis.
// No further cancel or return transition is permitted from a terminal
// status; the only remaining interaction is the refund orchestration.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Returned
}

// RequestCancel transitions the status for a customer cancel request.
//
// Valid only from pending, processing, or shipped. The destination
// depends on whether a delivery route is attached: once logistics has
// been engaged cancellation needs human review.
//
//   - routeAttached == false: -> Cancelled (direct cancellation)
//   - routeAttached == true:  -> CancellationRequested
func (s Status) RequestCancel(routeAttached bool) (Status, error) {
	if !s.IsOperational() {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "request cancel")
	}

	if routeAttached {
		return CancellationRequested, nil
	}
	return Cancelled, nil
}

// ApproveCancel transitions cancellation_requested -> cancelled.
func (s Status) ApproveCancel() (Status, error) {
	if s != CancellationRequested {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "approve cancel")
	}
	return Cancelled, nil
}

// RejectCancel reverts cancellation_requested to the operational status
// the order held before the request was made.
func (s Status) RejectCancel(previous Status) (Status, error) {
	if s != CancellationRequested {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "reject cancel")
	}
	if !previous.IsOperational() {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", previous.String(), "revert to")
	}
	return previous, nil
}

// RequestReturn transitions delivered -> return_requested. The return
// window check is enforced by the Order aggregate, which owns the
// delivery date.
func (s Status) RequestReturn() (Status, error) {
	if s != Delivered {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "request return")
	}
	return ReturnRequested, nil
}

// ApproveReturn transitions return_requested -> returned.
func (s Status) ApproveReturn() (Status, error) {
	if s != ReturnRequested {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "approve return")
	}
	return Returned, nil
}

// RejectReturn reverts return_requested -> delivered.
func (s Status) RejectReturn() (Status, error) {
	if s != ReturnRequested {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "reject return")
	}
	return Delivered, nil
}

// Advance moves the status forward along the fulfillment progression
// (pending -> processing -> shipped -> delivered) when the attached
// route progresses. Backward moves and moves out of non-operational
// statuses are rejected.
func (s Status) Advance(target Status) (Status, error) {
	if !s.IsOperational() {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "advance")
	}
	if target != Processing && target != Shipped && target != Delivered {
		return StatusUnknown, errs.NewValueIsInvalidError("target status " + target.String())
	}
	if target <= s {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order", s.String(), "advance to "+target.String())
	}
	return target, nil
}
