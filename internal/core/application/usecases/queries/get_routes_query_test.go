package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRoutesQuery_Valid(t *testing.T) {
	query := queries.NewGetRoutesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetRoutesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRoutesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRoutesQueryIsNotConstructed)
}
