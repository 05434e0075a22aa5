package queries_test

import (
	"testing"

	"github.com/hmucanze19/algafood-api/internal/core/application/usecases/queries"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_DefaultsLimit(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(0, 0)
	require.NoError(t, err)
	require.Equal(t, 20, query.Limit())
}

func TestNewGetOrdersQuery_CapsLimit(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(5000, 0)
	require.NoError(t, err)
	require.Equal(t, 100, query.Limit())
}

func TestNewGetOrdersQuery_RejectsNegativeOffset(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrderByCodeQuery_RequiresCode(t *testing.T) {
	_, err := queries.NewGetOrderByCodeQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetRestaurantMenuQuery_RequiresRestaurantID(t *testing.T) {
	_, err := queries.NewGetRestaurantMenuQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
