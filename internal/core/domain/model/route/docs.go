// Package route provides the DeliveryRoute aggregate: a city plus date
// grouping of orders for a single delivery run.
//
// The package includes:
//   - Route: The aggregate root owning the route's city, date, and status
//   - Status: A state machine enforcing the strictly forward progression
//     pending -> processing -> shipped -> delivered
//
// Order membership is derived from each order's route reference; the
// route never stores a duplicated order list. Routes in shipped or
// delivered status are closed for new assignments.
package route
