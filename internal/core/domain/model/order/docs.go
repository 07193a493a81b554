// Package order provides domain entities and business logic for the order
// side of the fulfillment engine. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, totals, payment,
//     route attachment, and the fulfillment lifecycle
//   - Status: A state machine enforcing valid order status transitions
//   - PaymentMethod / PaymentStatus: payment enums with the single legal
//     refund transition
//   - Item: An immutable order line with a pricing snapshot
//
// Key business rules:
//   - Items and totals are fixed at creation and never recomputed
//   - A cancel request is direct while no route is attached, and becomes a
//     reviewable request once logistics has been engaged
//   - Returns are accepted within an inclusive 30-day window from delivery
//   - cancelled and returned are terminal on the cancel/return axis
//   - Refunds only move paid -> refunded, never back
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation so business rules are
// enforced by construction.
package order
