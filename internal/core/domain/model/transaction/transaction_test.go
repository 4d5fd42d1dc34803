package transaction_test

import (
	"testing"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/transaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	hogIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	t.Run("should create valid transaction", func(t *testing.T) {
		tx, err := transaction.NewTransaction(validID, date, customerID, hogIDs)

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.True(t, tx.ID().IsEqual(validID))
		assert.Equal(t, date, tx.TransactionDate())
		assert.True(t, tx.Customer().IsEqual(customerID))
		require.Len(t, tx.Hogs(), 2)
		assert.True(t, tx.Hogs()[0].IsEqual(hogIDs[0]))
		assert.True(t, tx.Hogs()[1].IsEqual(hogIDs[1]))
	})

	t.Run("should fail with invalid transaction ID", func(t *testing.T) {
		var invalidID kernel.UUID

		tx, err := transaction.NewTransaction(invalidID, date, customerID, hogIDs)

		require.Error(t, err)
		assert.Nil(t, tx)
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		tx, err := transaction.NewTransaction(validID, time.Time{}, customerID, hogIDs)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, transaction.ErrTransactionDateIsRequired)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		tx, err := transaction.NewTransaction(validID, date, invalidCustomer, hogIDs)

		require.Error(t, err)
		assert.Nil(t, tx)
	})

	t.Run("should fail with empty hog set", func(t *testing.T) {
		tx, err := transaction.NewTransaction(validID, date, customerID, nil)

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, transaction.ErrNoHogsInTransaction)
	})

	t.Run("should fail with duplicate hog IDs", func(t *testing.T) {
		hogID := kernel.NewUUID()

		tx, err := transaction.NewTransaction(validID, date, customerID, []kernel.UUID{hogID, hogID})

		require.Error(t, err)
		assert.Nil(t, tx)
		assert.Contains(t, err.Error(), "duplicates")
	})

	t.Run("should fail with an invalid hog ID in the set", func(t *testing.T) {
		var invalidHog kernel.UUID

		tx, err := transaction.NewTransaction(validID, date, customerID, []kernel.UUID{kernel.NewUUID(), invalidHog})

		require.Error(t, err)
		assert.Nil(t, tx)
	})
}

func TestTransaction_Hogs_Immutable(t *testing.T) {
	hogIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	tx, err := transaction.NewTransaction(
		kernel.NewUUID(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		kernel.NewUUID(),
		hogIDs,
	)
	require.NoError(t, err)

	got := tx.Hogs()
	got[0] = kernel.NewUUID()

	fresh := tx.Hogs()
	assert.True(t, fresh[0].IsEqual(hogIDs[0]))
}

func TestTransaction_Validate(t *testing.T) {
	t.Run("should reject zero value transaction", func(t *testing.T) {
		var tx transaction.Transaction
		err := tx.Validate()

		require.Error(t, err)
		assert.Equal(t, transaction.ErrTransactionIsNotConstructed, err)
	})

	t.Run("should reject nil transaction", func(t *testing.T) {
		var tx *transaction.Transaction
		require.Error(t, tx.Validate())
	})
}
