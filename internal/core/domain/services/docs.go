// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A domain service that groups assignable orders into
//     city-based delivery routes and produces auto-assignment plans
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
