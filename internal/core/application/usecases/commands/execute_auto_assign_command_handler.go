package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CityOutcome reports what the auto-assignment run did for one city.
// Failed counts as zero work: the city's transaction was rolled back.
type CityOutcome struct {
	City          string
	RouteID       string
	RouteCreated  bool
	AssignedCount int
	SkippedCount  int
	Err           error
}

// ExecuteAutoAssignCommandHandler applies an auto-assignment run: for
// each city with assignable orders it reuses the best open route or
// creates one, then attaches the city's orders.
//
// Each city runs in its own transaction. A failure in one city rolls
// back only that city and is reported in its outcome; the run continues
// with the remaining cities. Order eligibility is re-validated inside the
// city transaction, so orders that were cancelled or manually assigned
// since the analysis are silently skipped.
type ExecuteAutoAssignCommandHandler struct {
	uowFactory UoWFactory
	planner    services.RoutePlanner
}

// NewExecuteAutoAssignCommandHandler creates a handler for auto-assignment runs.
func NewExecuteAutoAssignCommandHandler(uowFactory UoWFactory) ExecuteAutoAssignCommandHandler {
	return ExecuteAutoAssignCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle runs the assignment and returns the per-city outcomes. The
// returned error covers only the initial snapshot; per-city failures are
// carried in the outcomes.
func (h ExecuteAutoAssignCommandHandler) Handle(
	ctx context.Context,
	cmd ExecuteAutoAssignCommand,
) ([]CityOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	groups, err := h.snapshotGroups(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]CityOutcome, 0, len(groups))
	for _, group := range groups {
		outcome := h.assignCity(ctx, cmd, group)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// snapshotGroups reads the current unassigned orders and groups them by
// city. The snapshot is advisory only; every order is re-validated inside
// its city's transaction.
func (h ExecuteAutoAssignCommandHandler) snapshotGroups(ctx context.Context) ([]services.CityGroup, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unassigned, err := uow.OrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.planner.GroupAssignableByCity(unassigned), nil
}

// assignCity attaches one city's orders to a route inside a dedicated
// transaction.
func (h ExecuteAutoAssignCommandHandler) assignCity(
	ctx context.Context,
	cmd ExecuteAutoAssignCommand,
	group services.CityGroup,
) CityOutcome {
	outcome := CityOutcome{City: group.Name}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		outcome.Err = err
		return outcome
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, created, err := h.targetRoute(ctx, uow, cmd, group)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.RouteID = target.ID().String()
	outcome.RouteCreated = created

	orderRepo := uow.OrderRepository()
	for _, snapshot := range group.Orders {
		assigned, err := h.assignOne(ctx, orderRepo, snapshot.ID(), target)
		if err != nil {
			return CityOutcome{City: group.Name, Err: err}
		}
		if assigned {
			outcome.AssignedCount++
		} else {
			outcome.SkippedCount++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return CityOutcome{City: group.Name, Err: err}
	}

	return outcome
}

// targetRoute picks the open route for the city or creates a new one
// with the run's date for that city.
func (h ExecuteAutoAssignCommandHandler) targetRoute(
	ctx context.Context,
	uow UoW,
	cmd ExecuteAutoAssignCommand,
	group services.CityGroup,
) (*route.Route, bool, error) {
	routeRepo := uow.RouteRepository()
	open, err := routeRepo.GetAllOpenByCity(ctx, group.Key)
	if err != nil {
		return nil, false, err
	}

	if existing := h.planner.PickOpenRoute(open); existing != nil {
		return existing, false, nil
	}

	city, err := kernel.NewCity(group.Name)
	if err != nil {
		return nil, false, err
	}
	created, err := route.NewRoute(kernel.NewUUID(), city, cmd.DateFor(group.Key))
	if err != nil {
		return nil, false, err
	}
	if err = routeRepo.Add(ctx, created); err != nil {
		return nil, false, err
	}

	return created, true, nil
}

// assignOne re-reads the order inside the city transaction and attaches
// it to the target route. Returns false when the order became ineligible
// since the snapshot; those are skipped without failing the city.
func (h ExecuteAutoAssignCommandHandler) assignOne(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	orderID kernel.UUID,
	target *route.Route,
) (bool, error) {
	fresh, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if !fresh.IsAssignable() {
		return false, nil
	}

	if err = fresh.AssignToRoute(target.ID(), target.DeliveryDate()); err != nil {
		return false, err
	}
	if err = orderRepo.Update(ctx, fresh); err != nil {
		return false, err
	}

	return true, nil
}
