package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the wire format for delivery dates.
const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateRequest runs struct validation and flattens the result into a
// single human-readable message.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Field()+" "+validationMessage(fieldErr))
	}

	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

// Error is the JSON error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ReasonRequest carries the customer-supplied reason for a cancellation
// or return request.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// AssignOrderRequest names the route an order should be attached to.
type AssignOrderRequest struct {
	RouteID string `json:"route_id" validate:"required,uuid"`
}

// CreateRouteRequest describes a new delivery route.
type CreateRouteRequest struct {
	City         string `json:"city" validate:"required"`
	DeliveryDate string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
}

// ChangeRouteStatusRequest carries the target status for a route.
type ChangeRouteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ExecuteAutoAssignRequest approves an auto-assignment run. DateOverrides
// keys are city names; values replace DefaultDate for routes created in
// that city.
type ExecuteAutoAssignRequest struct {
	DefaultDate   string            `json:"default_date" validate:"required,datetime=2006-01-02"`
	DateOverrides map[string]string `json:"date_overrides" validate:"omitempty,dive,datetime=2006-01-02"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RouteResponse is one row of the route listing.
type RouteResponse struct {
	ID           string `json:"id"`
	City         string `json:"city"`
	DeliveryDate string `json:"delivery_date"`
	Status       string `json:"status"`
	OrderCount   int    `json:"order_count"`
}

// UnassignedOrderResponse is one row of the unassigned-order listing.
type UnassignedOrderResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	City      string `json:"city"`
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
}

// NewRoutePlanResponse proposes creating a route for a city.
type NewRoutePlanResponse struct {
	City          string `json:"city"`
	OrderCount    int    `json:"order_count"`
	SuggestedDate string `json:"suggested_date"`
}

// ExistingRoutePlanResponse proposes reusing an open route.
type ExistingRoutePlanResponse struct {
	City          string `json:"city"`
	RouteID       string `json:"route_id"`
	OrderCount    int    `json:"order_count"`
	SuggestedDate string `json:"suggested_date"`
}

// PlanResponse is the dry-run output of the auto-assignment analysis.
type PlanResponse struct {
	NewRoutes      []NewRoutePlanResponse      `json:"new_routes"`
	ExistingRoutes []ExistingRoutePlanResponse `json:"existing_routes"`
}

// CityOutcomeResponse reports what an auto-assignment run did for one city.
type CityOutcomeResponse struct {
	City          string `json:"city"`
	RouteID       string `json:"route_id,omitempty"`
	RouteCreated  bool   `json:"route_created"`
	AssignedCount int    `json:"assigned_count"`
	SkippedCount  int    `json:"skipped_count"`
	Error         string `json:"error,omitempty"`
}
