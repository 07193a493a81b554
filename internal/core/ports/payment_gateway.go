package ports

import (
	"context"
)

// PaymentGateway defines the contract with the external payment
// provider. Only the refund operation is needed by this service; charges
// are captured by the storefront before the order reaches fulfillment.
type PaymentGateway interface {
	// Refund returns the given amount (in minor currency units) for the
	// payment identified by paymentReference. A non-nil error means the
	// refund did not happen and the operation is safe to retry; no
	// partial state is left behind on the provider side.
	Refund(ctx context.Context, paymentReference string, amount int64) error
}
