package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
}

func NewCompositionRoot(gormDB *gorm.DB, gateway ports.PaymentGateway) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRequestCancelCommandHandler() commands.RequestCancelCommandHandler {
	return commands.NewRequestCancelCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveCancelCommandHandler() commands.ApproveCancelCommandHandler {
	return commands.NewApproveCancelCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectCancelCommandHandler() commands.RejectCancelCommandHandler {
	return commands.NewRejectCancelCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	return commands.NewRequestReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveReturnCommandHandler() commands.ApproveReturnCommandHandler {
	return commands.NewApproveReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectReturnCommandHandler() commands.RejectReturnCommandHandler {
	return commands.NewRejectReturnCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateChangeRouteStatusCommandHandler() commands.ChangeRouteStatusCommandHandler {
	return commands.NewChangeRouteStatusCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateExecuteAutoAssignCommandHandler() commands.ExecuteAutoAssignCommandHandler {
	return commands.NewExecuteAutoAssignCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAnalyzeAutoAssignQueryHandler() queries.AnalyzeAutoAssignQueryHandler {
	return queries.NewAnalyzeAutoAssignQueryHandler(c.uowFactory)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
