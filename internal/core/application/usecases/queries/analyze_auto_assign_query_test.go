package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyzeAutoAssignQuery_Valid(t *testing.T) {
	defaultDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewAnalyzeAutoAssignQuery(defaultDate)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.DefaultDate().Equal(defaultDate))
}

func TestNewAnalyzeAutoAssignQuery_ZeroDate(t *testing.T) {
	_, err := queries.NewAnalyzeAutoAssignQuery(time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAnalyzeAutoAssignQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.AnalyzeAutoAssignQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAnalyzeAutoAssignQueryIsNotConstructed)
}
