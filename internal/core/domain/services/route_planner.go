package services

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
)

// CityGroup is a set of assignable orders sharing the same shipping city.
// The Key is the city's case-insensitive match key; Name keeps the
// normalized display casing of the first order encountered.
type CityGroup struct {
	Key    string
	Name   string
	Orders []*order.Order
}

// NewRoutePlan proposes creating a route for a city that has assignable
// orders but no open route. SuggestedDate is the caller-provided default;
// the execute phase may override it per city.
type NewRoutePlan struct {
	City          string
	OrderCount    int
	SuggestedDate time.Time
}

// ExistingRoutePlan proposes assigning a city's orders to an already open
// route. SuggestedDate is the existing route's delivery date and is not
// altered by execution.
type ExistingRoutePlan struct {
	City          string
	RouteID       string
	OrderCount    int
	SuggestedDate time.Time
}

// Plan is the dry-run output of the auto-assignment analysis: which
// cities need a new route and which can reuse an open one. A Plan is a
// pure value; producing it mutates nothing.
type Plan struct {
	NewRoutes      []NewRoutePlan
	ExistingRoutes []ExistingRoutePlan
}

// IsEmpty reports whether the plan proposes no work at all.
func (p Plan) IsEmpty() bool {
	return len(p.NewRoutes) == 0 && len(p.ExistingRoutes) == 0
}

// RoutePlanner is a domain service that groups unassigned orders into
// city-based delivery routes.
//
// The planner is two-phased: Analyze computes a plan without side
// effects, and the execute use case applies an approved plan. Both
// phases share GroupAssignableByCity, so an Analyze rerun with unchanged
// inputs is structurally guaranteed to yield an identical plan.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// GroupAssignableByCity partitions the assignable subset of the given
// orders by their shipping city's match key. Orders already routed or in
// cancelled, returned, or delivered status are filtered out.
//
// Groups are returned sorted by city key, so the result is deterministic
// regardless of input order.
func (p RoutePlanner) GroupAssignableByCity(orders []*order.Order) []CityGroup {
	byKey := make(map[string]*CityGroup)
	for _, o := range orders {
		if !o.IsAssignable() {
			continue
		}

		key := o.City().Key()
		group, ok := byKey[key]
		if !ok {
			group = &CityGroup{Key: key, Name: o.City().Name()}
			byKey[key] = group
		}
		group.Orders = append(group.Orders, o)
	}

	groups := make([]CityGroup, 0, len(byKey))
	for _, group := range byKey {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	return groups
}

// PickOpenRoute selects the route to reuse for a city among the given
// candidates. Closed routes are ignored. When several open routes exist
// for the same city (a data anomaly), the one with the earliest delivery
// date wins; equal dates are broken by lowest route ID, so the choice is
// deterministic rather than an artifact of iteration order.
func (p RoutePlanner) PickOpenRoute(routes []*route.Route) *route.Route {
	var best *route.Route
	for _, r := range routes {
		if !r.IsOpen() {
			continue
		}
		if best == nil {
			best = r
			continue
		}

		switch {
		case r.DeliveryDate().Before(best.DeliveryDate()):
			best = r
		case r.DeliveryDate().Equal(best.DeliveryDate()) && r.ID().String() < best.ID().String():
			best = r
		}
	}

	return best
}

// Analyze computes the auto-assignment plan for the given orders and
// open routes without mutating anything.
//
// Each city group either matches an open route (emitted under
// ExistingRoutes, suggesting the route's own delivery date) or has none
// (emitted under NewRoutes, suggesting defaultDate). Calling Analyze
// twice with the same inputs yields an identical plan.
func (p RoutePlanner) Analyze(
	orders []*order.Order,
	openRoutes []*route.Route,
	defaultDate time.Time,
) Plan {
	routesByCity := make(map[string][]*route.Route)
	for _, r := range openRoutes {
		key := r.City().Key()
		routesByCity[key] = append(routesByCity[key], r)
	}

	var plan Plan
	for _, group := range p.GroupAssignableByCity(orders) {
		if existing := p.PickOpenRoute(routesByCity[group.Key]); existing != nil {
			plan.ExistingRoutes = append(plan.ExistingRoutes, ExistingRoutePlan{
				City:          group.Name,
				RouteID:       existing.ID().String(),
				OrderCount:    len(group.Orders),
				SuggestedDate: existing.DeliveryDate(),
			})
			continue
		}

		plan.NewRoutes = append(plan.NewRoutes, NewRoutePlan{
			City:          group.Name,
			OrderCount:    len(group.Orders),
			SuggestedDate: defaultDate,
		})
	}

	return plan
}
