package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestGetAllMenusQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetAllMenusQuery().Validate())

	var zero queries.GetAllMenusQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllMenusQueryIsNotConstructed)
}

func TestGetAllMenuGroupsQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetAllMenuGroupsQuery().Validate())

	var zero queries.GetAllMenuGroupsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllMenuGroupsQueryIsNotConstructed)
}

func TestGetIncompleteOrdersQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetIncompleteOrdersQuery().Validate())

	var zero queries.GetIncompleteOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetIncompleteOrdersQueryIsNotConstructed)
}

func TestGetAllTablesQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetAllTablesQuery().Validate())

	var zero queries.GetAllTablesQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllTablesQueryIsNotConstructed)
}
