package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"
)

// ChangeRouteStatusCommandHandler progresses a delivery route and fans
// the change out to the attached orders in the same transaction.
//
// Moving to processing or shipped advances the operational orders on the
// route. Moving to delivered stamps the route's delivery date on every
// attached order and marks them delivered; this starts their return
// window. Orders that cannot follow (a pending cancellation request, for
// example) are left for the admin to resolve rather than failing the
// whole route.
type ChangeRouteStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeRouteStatusCommandHandler creates a handler for route status changes.
func NewChangeRouteStatusCommandHandler(uowFactory UoWFactory) ChangeRouteStatusCommandHandler {
	return ChangeRouteStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change and the order fan-out atomically.
func (h ChangeRouteStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRouteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.fanOutToOrders(ctx, uow, aggregate, cmd.Target()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// fanOutToOrders applies the route's new status to its attached orders.
// An order that cannot follow the transition is skipped, not failed: the
// route has physically progressed regardless of the order's paperwork.
func (h ChangeRouteStatusCommandHandler) fanOutToOrders(
	ctx context.Context,
	uow UoW,
	aggregate *route.Route,
	target route.Status,
) error {
	orderRepo := uow.OrderRepository()
	attached, err := orderRepo.GetAllByRoute(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, o := range attached {
		var transitionErr error
		if target == route.Delivered {
			transitionErr = o.MarkDelivered(aggregate.DeliveryDate())
		} else {
			transitionErr = o.AdvanceStatus(orderStatusFor(target))
		}

		if transitionErr != nil {
			if errors.Is(transitionErr, errs.ErrInvalidStateTransition) {
				continue
			}
			return transitionErr
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return nil
}

// orderStatusFor maps an intermediate route status onto the order
// progression. Only called for processing and shipped; delivered goes
// through MarkDelivered.
func orderStatusFor(target route.Status) order.Status {
	if target == route.Shipped {
		return order.Shipped
	}
	return order.Processing
}
