package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAnalyzeAutoAssignQueryIsNotConstructed = errors.New(
		"AnalyzeAutoAssignQuery must be created via NewAnalyzeAutoAssignQuery constructor",
	)
)

// AnalyzeAutoAssignQuery computes the auto-assignment plan without
// applying it. The result shows which cities would reuse an open route
// and which would get a new one dated defaultDate.
//
// Running the analysis changes nothing; the plan is applied by the
// execute auto-assign command, which may override dates per city.
//
// Example:
//
//	query, err := NewAnalyzeAutoAssignQuery(time.Now().AddDate(0, 0, 2))
//	if err != nil {
//	    return err
//	}
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to analyze assignment: %w", err)
//	}
//
//	fmt.Printf("Would create %d routes\n", len(plan.NewRoutes))
type AnalyzeAutoAssignQuery struct {
	defaultDate time.Time

	guard guard.ConstructorGuard
}

// NewAnalyzeAutoAssignQuery creates a dry-run analysis query.
// defaultDate is the delivery date suggested for routes that would be created.
func NewAnalyzeAutoAssignQuery(defaultDate time.Time) (AnalyzeAutoAssignQuery, error) {
	query := AnalyzeAutoAssignQuery{guard: guard.NewConstructorGuard()}

	if err := query.setDefaultDate(defaultDate); err != nil {
		return AnalyzeAutoAssignQuery{}, err
	}

	return query, nil
}

func (q *AnalyzeAutoAssignQuery) setDefaultDate(defaultDate time.Time) error {
	if defaultDate.IsZero() {
		return errs.NewValueIsRequiredError("defaultDate")
	}

	q.defaultDate = defaultDate
	return nil
}

// DefaultDate returns the delivery date suggested for new routes.
func (q AnalyzeAutoAssignQuery) DefaultDate() time.Time {
	return q.defaultDate
}

// Validate ensures the query was created through the constructor.
// Returns ErrAnalyzeAutoAssignQueryIsNotConstructed if validation fails.
func (q AnalyzeAutoAssignQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzeAutoAssignQueryIsNotConstructed)
}
