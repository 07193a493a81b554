package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AnalyzeAutoAssignQueryHandler computes auto-assignment plans.
//
// Unlike the other query handlers this one is repository-based rather
// than raw SQL: the plan depends on domain eligibility rules, so the
// orders are rehydrated as aggregates and the planner decides. Both
// listings are read in a single transaction to get a consistent snapshot.
type AnalyzeAutoAssignQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	planner    services.RoutePlanner
}

// NewAnalyzeAutoAssignQueryHandler creates a handler for assignment analysis.
func NewAnalyzeAutoAssignQueryHandler(uowFactory ports.UnitOfWorkFactory) AnalyzeAutoAssignQueryHandler {
	return AnalyzeAutoAssignQueryHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle computes the plan for the current unassigned orders and open
// routes. The database is not modified.
func (h AnalyzeAutoAssignQueryHandler) Handle(
	ctx context.Context,
	query AnalyzeAutoAssignQuery,
) (services.Plan, error) {
	if err := query.Validate(); err != nil {
		return services.Plan{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Plan{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unassigned, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	openRoutes, err := uow.RouteRepository().GetAllOpen(ctx)
	if err != nil {
		return services.Plan{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Plan{}, err
	}

	return h.planner.Analyze(unassigned, openRoutes, query.DefaultDate()), nil
}
