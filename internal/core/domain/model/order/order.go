package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ReturnWindow is how long after delivery a customer may still request a
// return. The boundary is inclusive: a request exactly ReturnWindow after
// the delivery date is still eligible.
const ReturnWindow = 30 * 24 * time.Hour

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order. It owns the order's
// fulfillment status, payment status, and delivery-route attachment, and
// is the only place either status may change.
//
// Order follows these invariants:
//   - The item list is immutable after creation; totals are computed once
//     and never implicitly recomputed.
//   - Status transitions go through the Status state machine only.
//   - At most one delivery route is attached at any time.
//   - cancellationReason and returnReason are set once, at the
//     transition that introduced them.
//   - paymentStatus only ever moves paid -> refunded inside this core.
//
// The struct uses private fields so invariants cannot be bypassed;
// reconstruction from persistence goes through RestoreOrder.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID

	// city is the shipping destination used for route grouping.
	city kernel.City

	items     []Item
	subtotal  int64
	discount  int64
	total     int64

	status Status

	// previousStatus remembers the operational status the order held when
	// a cancellation request was filed, so an admin rejection can revert it.
	previousStatus Status

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	// paymentRef is the gateway's reference for the captured payment,
	// required for refunds of stripe orders.
	paymentRef string

	// routeID is the optional weak reference to the delivery route.
	routeID *kernel.UUID

	// deliveryDate is the working delivery date: stamped from the route on
	// assignment, finalized when the route is marked delivered.
	deliveryDate *time.Time

	cancellationReason string
	returnReason       string

	// version supports optimistic concurrency control in the repository.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in pending status with an immutable item
// list. Totals are computed here, once: subtotal is the sum of item
// totals, total is subtotal minus discount.
//
// The initial payment status comes from the order-creation flow (cod
// orders arrive unpaid, stripe orders arrive paid with a payment
// reference); it may never be Refunded at creation.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	city kernel.City,
	items []Item,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	paymentRef string,
	discount int64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCity(city),
		o.setItems(items),
		o.setPayment(paymentMethod, paymentStatus, paymentRef),
	); err != nil {
		return nil, err
	}

	if discount < 0 || discount > o.subtotal {
		return nil, errs.NewValueIsOutOfRangeError("discount", discount, 0, o.subtotal)
	}
	o.discount = discount
	o.total = o.subtotal - discount
	o.version = 1

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without rerunning
// creation-time rules. The stored status fields are still validated so a
// corrupted row cannot produce an aggregate in an undefined state.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	city kernel.City,
	items []Item,
	subtotal int64,
	discount int64,
	total int64,
	status Status,
	previousStatus Status,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	paymentRef string,
	routeID *kernel.UUID,
	deliveryDate *time.Time,
	cancellationReason string,
	returnReason string,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		city.Validate(),
		status.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
	}
	// previousStatus backs the reject path while a cancellation request is
	// under review, so it must be restorable then.
	if status == CancellationRequested {
		if err := previousStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	return &Order{
		id:                 id,
		userID:             userID,
		city:               city,
		items:              items,
		subtotal:           subtotal,
		discount:           discount,
		total:              total,
		status:             status,
		previousStatus:     previousStatus,
		paymentMethod:      paymentMethod,
		paymentStatus:      paymentStatus,
		paymentRef:         paymentRef,
		routeID:            routeID,
		deliveryDate:       deliveryDate,
		cancellationReason: cancellationReason,
		returnReason:       returnReason,
		version:            version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// City returns the shipping city used for route grouping.
func (o *Order) City() kernel.City {
	return o.city
}

// Items returns the order lines. The slice must not be mutated.
func (o *Order) Items() []Item {
	return o.items
}

// Subtotal returns the sum of all item totals in minor currency units.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Discount returns the discount applied at creation.
func (o *Order) Discount() int64 {
	return o.discount
}

// Total returns the final amount charged: subtotal minus discount.
// This is the amount refunded by the refund orchestration.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PreviousStatus returns the operational status held before a pending
// cancellation request, or StatusUnknown when no request is pending.
func (o *Order) PreviousStatus() Status {
	return o.previousStatus
}

// PaymentMethod returns how the order was paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentReference returns the gateway reference of the captured payment.
func (o *Order) PaymentReference() string {
	return o.paymentRef
}

// RouteID returns the attached delivery route's ID, or nil when the order
// is unassigned.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// DeliveryDate returns the working delivery date, or nil when the order
// has never been routed or delivered.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// CancellationReason returns the customer's cancellation reason, if any.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// ReturnReason returns the customer's return reason, if any.
func (o *Order) ReturnReason() string {
	return o.returnReason
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// IsAssignable reports whether the order may still be attached to a
// delivery route: it must be unassigned and not cancelled, returned, or
// already delivered. This is the eligibility filter shared by manual
// assignment and the auto-assignment planner.
func (o *Order) IsAssignable() bool {
	return o.routeID == nil &&
		o.status != Cancelled && o.status != Returned && o.status != Delivered
}

// RequestCancel processes a customer cancellation request.
//
// With no route attached the order is cancelled directly. With a route
// attached the order moves to cancellation_requested and remembers its
// current status so an admin rejection can revert it. The reason is
// recorded once; later requests cannot overwrite it.
func (o *Order) RequestCancel(reason string) error {
	newStatus, err := o.status.RequestCancel(o.routeID != nil)
	if err != nil {
		return err
	}

	if newStatus == CancellationRequested {
		o.previousStatus = o.status
	}
	o.status = newStatus
	if o.cancellationReason == "" {
		o.cancellationReason = reason
	}
	return nil
}

// ApproveCancel finalizes a pending cancellation request.
func (o *Order) ApproveCancel() error {
	newStatus, err := o.status.ApproveCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RejectCancel denies a pending cancellation request, reverting the order
// to the operational status it held when the request was filed.
func (o *Order) RejectCancel() error {
	newStatus, err := o.status.RejectCancel(o.previousStatus)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.previousStatus = StatusUnknown
	return nil
}

// RequestReturn processes a customer return request at the given time.
//
// The order must be delivered and within the return window measured from
// the delivery date; the boundary is inclusive, so a request exactly
// ReturnWindow after delivery still succeeds. The reason is recorded once.
func (o *Order) RequestReturn(reason string, now time.Time) error {
	newStatus, err := o.status.RequestReturn()
	if err != nil {
		return err
	}

	if o.deliveryDate == nil {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if now.Sub(*o.deliveryDate) > ReturnWindow {
		return errs.NewReturnWindowExpiredError(o.id.String(), *o.deliveryDate, now)
	}

	o.previousStatus = o.status
	o.status = newStatus
	if o.returnReason == "" {
		o.returnReason = reason
	}
	return nil
}

// ApproveReturn finalizes a pending return request.
func (o *Order) ApproveReturn() error {
	newStatus, err := o.status.ApproveReturn()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.previousStatus = StatusUnknown
	return nil
}

// RejectReturn denies a pending return request, reverting the order to
// delivered.
func (o *Order) RejectReturn() error {
	newStatus, err := o.status.RejectReturn()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.previousStatus = StatusUnknown
	return nil
}

// AssignToRoute attaches the order to a delivery route and stamps the
// route's delivery date onto the order's working delivery date.
//
// An order already attached to a different route is rejected with
// OrderAlreadyRouted; callers must unassign explicitly first. Re-assigning
// to the same route is a no-op success. Orders that are cancelled,
// returned, or already delivered cannot be routed.
func (o *Order) AssignToRoute(routeID kernel.UUID, deliveryDate time.Time) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	if o.routeID != nil {
		if o.routeID.IsEqual(routeID) {
			return nil
		}
		return errs.NewOrderAlreadyRoutedError(o.id.String(), o.routeID.String())
	}

	if o.status == Cancelled || o.status == Returned || o.status == Delivered {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), "assign to route")
	}

	o.routeID = &routeID
	o.deliveryDate = &deliveryDate
	return nil
}

// UnassignRoute detaches the order from its delivery route. Unassigning
// an order that has no route is a no-op success. The working delivery
// date is cleared unless the order was already delivered.
func (o *Order) UnassignRoute() {
	if o.routeID == nil {
		return
	}

	o.routeID = nil
	if o.status != Delivered {
		o.deliveryDate = nil
	}
}

// AdvanceStatus moves the order forward along the fulfillment progression
// when its route progresses (processing, shipped).
func (o *Order) AdvanceStatus(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered records the physical delivery of the order on the given
// date, called when the attached route is marked delivered.
//
// Operational orders move to delivered and get the delivery date stamped,
// which seeds the return window clock. An order with a pending
// cancellation request keeps its status but still gets the date stamped;
// the request remains for the admin to resolve. Any other status is
// rejected.
func (o *Order) MarkDelivered(deliveredOn time.Time) error {
	if o.status == CancellationRequested {
		o.deliveryDate = &deliveredOn
		return nil
	}

	if !o.status.IsOperational() {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), "deliver")
	}

	o.status = Delivered
	o.deliveryDate = &deliveredOn
	return nil
}

// RefundEligibility checks every precondition of the refund orchestration
// without mutating anything:
//
//   - payment method must be stripe
//   - payment status must be paid (refunded fails fast with AlreadyRefunded)
//   - order status must be cancelled or returned
//
// Returning nil means the external gateway may be called for the order's
// total amount.
func (o *Order) RefundEligibility() error {
	if o.paymentStatus == Refunded {
		return errs.NewAlreadyRefundedError(o.id.String())
	}
	if o.paymentMethod != Stripe {
		return errs.NewInvalidStateTransitionError("payment", o.paymentMethod.String(), "refund")
	}
	if o.paymentStatus != Paid {
		return errs.NewInvalidStateTransitionError("payment", o.paymentStatus.String(), "refund")
	}
	if !o.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), "refund")
	}
	return nil
}

// MarkRefunded finalizes the payment status after a successful gateway
// refund. Preconditions are re-checked so the transition cannot be
// reached out of order.
func (o *Order) MarkRefunded() error {
	if err := o.RefundEligibility(); err != nil {
		return err
	}

	newStatus, err := o.paymentStatus.Refund()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning customer reference.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

// setCity validates and sets the shipping city.
func (o *Order) setCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	o.city = city
	return nil
}

// setItems validates the item list and computes the subtotal.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var subtotal int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal += item.Total()
	}

	o.items = items
	o.subtotal = subtotal
	return nil
}

// setPayment validates the payment fields as a unit: stripe orders must
// carry a payment reference, and no order can be created refunded.
func (o *Order) setPayment(method PaymentMethod, status PaymentStatus, paymentRef string) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Refunded {
		return errs.NewValueIsInvalidError("payment status refunded at creation")
	}
	if method == Stripe && paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}

	o.paymentMethod = method
	o.paymentStatus = status
	o.paymentRef = paymentRef
	return nil
}
