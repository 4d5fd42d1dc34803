package queries_test

import (
	"testing"

	"hogtrade/internal/core/application/usecases/queries"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableHogsQuery_Valid(t *testing.T) {
	query := queries.NewGetAvailableHogsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAvailableHogsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableHogsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAvailableHogsQueryIsNotConstructed)
}

func TestNewGetAllHogsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllHogsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllHogsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllHogsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllHogsQueryIsNotConstructed)
}

func TestNewGetCustomersQuery_Valid(t *testing.T) {
	query := queries.NewGetCustomersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetCustomersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomersQueryIsNotConstructed)
}

func TestNewGetTransactionsQuery_Valid(t *testing.T) {
	query := queries.NewGetTransactionsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetTransactionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTransactionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTransactionsQueryIsNotConstructed)
}

func TestNewGetTransactionQuery_Valid(t *testing.T) {
	transactionID := kernel.NewUUID()

	query, err := queries.NewGetTransactionQuery(transactionID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.TransactionID().IsEqual(transactionID))
}

func TestNewGetTransactionQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetTransactionQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetTransactionQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTransactionQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTransactionQueryIsNotConstructed)
}
