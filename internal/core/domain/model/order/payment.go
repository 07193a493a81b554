package order

import (
	"fulfillment/internal/pkg/errs"
)

// PaymentMethod identifies how an order was paid for. Refunds are only
// possible for gateway-backed payments (Stripe); cash-on-delivery orders
// settle outside the system.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// CashOnDelivery settles in cash when the courier hands over the order.
	CashOnDelivery

	// Stripe settles through the external payment gateway and carries a
	// payment reference usable for refunds.
	Stripe
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "cod",
		Stripe:         "stripe",
	}
}

// PaymentMethodFromString parses a payment method from its wire form.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidError("payment method " + s)
}

// Validate checks if the PaymentMethod value is defined.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidError("payment method")
	}
	return nil
}

// String returns "cod" or "stripe"; "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks the money side of an order, independent of the
// fulfillment status. It only moves unpaid -> paid (at creation, outside
// this core) and paid -> refunded (through the refund orchestration);
// refunded never moves back to paid.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid means no money has been captured yet (typical for cod).
	Unpaid

	// Paid means the gateway captured the full order total.
	Paid

	// Refunded is terminal: the gateway returned the full order total.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid:   "unpaid",
		Paid:     "paid",
		Refunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its wire form.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidError("payment status " + s)
}

// Validate checks if the PaymentStatus value is defined.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns "unpaid", "paid" or "refunded"; "unknown" for invalid values.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Refund transitions paid -> refunded. Any other starting point is
// rejected; in particular refunded stays refunded forever.
func (p PaymentStatus) Refund() (PaymentStatus, error) {
	if p != Paid {
		return PaymentStatusUnknown, errs.NewInvalidStateTransitionError("payment", p.String(), "refund")
	}
	return Refunded, nil
}
