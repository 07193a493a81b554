package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// Server exposes the fulfillment use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestCancelHandler     commands.RequestCancelCommandHandler
	approveCancelHandler     commands.ApproveCancelCommandHandler
	rejectCancelHandler      commands.RejectCancelCommandHandler
	requestReturnHandler     commands.RequestReturnCommandHandler
	approveReturnHandler     commands.ApproveReturnCommandHandler
	rejectReturnHandler      commands.RejectReturnCommandHandler
	refundOrderHandler       commands.RefundOrderCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	unassignOrderHandler     commands.UnassignOrderCommandHandler
	createRouteHandler       commands.CreateRouteCommandHandler
	deleteRouteHandler       commands.DeleteRouteCommandHandler
	changeRouteStatusHandler commands.ChangeRouteStatusCommandHandler
	executeAutoAssignHandler commands.ExecuteAutoAssignCommandHandler

	// Query handlers
	getRoutesHandler           queries.GetRoutesQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	analyzeAutoAssignHandler   queries.AnalyzeAutoAssignQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestCancelHandler commands.RequestCancelCommandHandler,
	approveCancelHandler commands.ApproveCancelCommandHandler,
	rejectCancelHandler commands.RejectCancelCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	approveReturnHandler commands.ApproveReturnCommandHandler,
	rejectReturnHandler commands.RejectReturnCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	unassignOrderHandler commands.UnassignOrderCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	deleteRouteHandler commands.DeleteRouteCommandHandler,
	changeRouteStatusHandler commands.ChangeRouteStatusCommandHandler,
	executeAutoAssignHandler commands.ExecuteAutoAssignCommandHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	analyzeAutoAssignHandler queries.AnalyzeAutoAssignQueryHandler,
) *Server {
	return &Server{
		requestCancelHandler:       requestCancelHandler,
		approveCancelHandler:       approveCancelHandler,
		rejectCancelHandler:        rejectCancelHandler,
		requestReturnHandler:       requestReturnHandler,
		approveReturnHandler:       approveReturnHandler,
		rejectReturnHandler:        rejectReturnHandler,
		refundOrderHandler:         refundOrderHandler,
		assignOrderHandler:         assignOrderHandler,
		unassignOrderHandler:       unassignOrderHandler,
		createRouteHandler:         createRouteHandler,
		deleteRouteHandler:         deleteRouteHandler,
		changeRouteStatusHandler:   changeRouteStatusHandler,
		executeAutoAssignHandler:   executeAutoAssignHandler,
		getRoutesHandler:           getRoutesHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
		analyzeAutoAssignHandler:   analyzeAutoAssignHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/cancel-request", s.RequestCancel)
	api.POST("/orders/:id/cancel-approve", s.ApproveCancel)
	api.POST("/orders/:id/cancel-reject", s.RejectCancel)
	api.POST("/orders/:id/return-request", s.RequestReturn)
	api.POST("/orders/:id/return-approve", s.ApproveReturn)
	api.POST("/orders/:id/return-reject", s.RejectReturn)
	api.POST("/orders/:id/refund", s.RefundOrder)
	api.POST("/orders/:id/route", s.AssignOrder)
	api.DELETE("/orders/:id/route", s.UnassignOrder)

	api.GET("/routes", s.GetRoutes)
	api.POST("/routes", s.CreateRoute)
	api.GET("/routes/auto-assign", s.AnalyzeAutoAssign)
	api.POST("/routes/auto-assign", s.ExecuteAutoAssign)
	api.DELETE("/routes/:id", s.DeleteRoute)
	api.PUT("/routes/:id/status", s.ChangeRouteStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// RequestCancel handles POST /api/v1/orders/:id/cancel-request.
func (s *Server) RequestCancel(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body ReasonRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRequestCancelCommand(orderID, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveCancel handles POST /api/v1/orders/:id/cancel-approve.
func (s *Server) ApproveCancel(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewApproveCancelCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectCancel handles POST /api/v1/orders/:id/cancel-reject.
func (s *Server) RejectCancel(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRejectCancelCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/v1/orders/:id/return-request.
func (s *Server) RequestReturn(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body ReasonRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, body.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveReturn handles POST /api/v1/orders/:id/return-approve.
func (s *Server) ApproveReturn(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewApproveReturnCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectReturn handles POST /api/v1/orders/:id/return-reject.
func (s *Server) RejectReturn(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRejectReturnCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/:id/route.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body AssignOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	routeID, err := kernel.UUIDFromString(body.RouteID)
	if err != nil {
		return badRequest(ctx, "Invalid route ID")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrder handles DELETE /api/v1/orders/:id/route.
func (s *Server) UnassignOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewUnassignOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.unassignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body CreateRouteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveryDate, err := time.Parse(dateLayout, body.DeliveryDate)
	if err != nil {
		return badRequest(ctx, "Invalid delivery date")
	}

	routeID := kernel.NewUUID()

	cmd, err := commands.NewCreateRouteCommand(routeID, body.City, deliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: routeID.String()})
}

// DeleteRoute handles DELETE /api/v1/routes/:id.
func (s *Server) DeleteRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid route ID")
	}

	cmd, err := commands.NewDeleteRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeRouteStatus handles PUT /api/v1/routes/:id/status.
func (s *Server) ChangeRouteStatus(ctx echo.Context) error {
	routeID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid route ID")
	}

	var body ChangeRouteStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := route.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid route status: "+body.Status)
	}

	cmd, err := commands.NewChangeRouteStatusCommand(routeID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeRouteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AnalyzeAutoAssign handles GET /api/v1/routes/auto-assign.
// The date query parameter sets the suggested delivery date for cities
// that would get a new route.
func (s *Server) AnalyzeAutoAssign(ctx echo.Context) error {
	dateParam := ctx.QueryParam("date")
	if dateParam == "" {
		return badRequest(ctx, "date query parameter is required")
	}

	defaultDate, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		return badRequest(ctx, "Invalid date")
	}

	query, err := queries.NewAnalyzeAutoAssignQuery(defaultDate)
	if err != nil {
		return respondError(ctx, err)
	}

	plan, err := s.analyzeAutoAssignHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := PlanResponse{
		NewRoutes:      make([]NewRoutePlanResponse, 0, len(plan.NewRoutes)),
		ExistingRoutes: make([]ExistingRoutePlanResponse, 0, len(plan.ExistingRoutes)),
	}
	for _, newRoute := range plan.NewRoutes {
		response.NewRoutes = append(response.NewRoutes, NewRoutePlanResponse{
			City:          newRoute.City,
			OrderCount:    newRoute.OrderCount,
			SuggestedDate: newRoute.SuggestedDate.Format(dateLayout),
		})
	}
	for _, existing := range plan.ExistingRoutes {
		response.ExistingRoutes = append(response.ExistingRoutes, ExistingRoutePlanResponse{
			City:          existing.City,
			RouteID:       existing.RouteID,
			OrderCount:    existing.OrderCount,
			SuggestedDate: existing.SuggestedDate.Format(dateLayout),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExecuteAutoAssign handles POST /api/v1/routes/auto-assign.
func (s *Server) ExecuteAutoAssign(ctx echo.Context) error {
	var body ExecuteAutoAssignRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validateRequest(body); err != nil {
		return badRequest(ctx, err.Error())
	}

	defaultDate, err := time.Parse(dateLayout, body.DefaultDate)
	if err != nil {
		return badRequest(ctx, "Invalid default date")
	}

	overrides := make(map[string]time.Time, len(body.DateOverrides))
	for city, raw := range body.DateOverrides {
		date, parseErr := time.Parse(dateLayout, raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid date override for "+city)
		}
		overrides[city] = date
	}

	cmd, err := commands.NewExecuteAutoAssignCommand(defaultDate, overrides)
	if err != nil {
		return respondError(ctx, err)
	}

	outcomes, err := s.executeAutoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CityOutcomeResponse, 0, len(outcomes))
	for _, outcome := range outcomes {
		outcomeResp := CityOutcomeResponse{
			City:          outcome.City,
			RouteID:       outcome.RouteID,
			RouteCreated:  outcome.RouteCreated,
			AssignedCount: outcome.AssignedCount,
			SkippedCount:  outcome.SkippedCount,
		}
		if outcome.Err != nil {
			outcomeResp.Error = outcome.Err.Error()
		}
		response = append(response, outcomeResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	query := queries.NewGetRoutesQuery()

	routes, err := s.getRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RouteResponse, 0, len(routes))
	for _, routeRow := range routes {
		response = append(response, RouteResponse{
			ID:           routeRow.ID.String(),
			City:         routeRow.City,
			DeliveryDate: routeRow.DeliveryDate.Format(dateLayout),
			Status:       routeRow.Status.String(),
			OrderCount:   routeRow.OrderCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UnassignedOrderResponse, 0, len(orders))
	for _, orderRow := range orders {
		response = append(response, UnassignedOrderResponse{
			ID:        orderRow.ID.String(),
			UserID:    orderRow.UserID.String(),
			City:      orderRow.City,
			Status:    orderRow.Status.String(),
			Total:     orderRow.Total,
			ItemCount: orderRow.ItemCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathID extracts and validates the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
