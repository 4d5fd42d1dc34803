package commands_test

import (
	"errors"
	"testing"
	"time"

	"hogtrade/internal/core/application/usecases/commands"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() commands.CreateTransactionForm {
	return commands.CreateTransactionForm{
		Customer: kernel.NewUUID().String(),
		Date:     "2024-01-15",
		Hogs:     []any{kernel.NewUUID().String(), kernel.NewUUID().String()},
	}
}

func TestNewCreateTransactionCommand_Success(t *testing.T) {
	txID := kernel.NewUUID()
	form := validForm()

	cmd, err := commands.NewCreateTransactionCommand(txID, form)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.TransactionID().IsEqual(txID))
	assert.Equal(t, form.Customer, cmd.CustomerID().String())
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), cmd.TransactionDate())
	require.Len(t, cmd.HogIDs(), 2)
	assert.Equal(t, form.Hogs.([]any)[0], cmd.HogIDs()[0].String())
	assert.Equal(t, form.Hogs.([]any)[1], cmd.HogIDs()[1].String())
}

func TestNewCreateTransactionCommand_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*commands.CreateTransactionForm)
		field   string
		message string
	}{
		{
			name:    "missing customer",
			mutate:  func(f *commands.CreateTransactionForm) { f.Customer = "" },
			field:   "customer",
			message: "missing customer",
		},
		{
			name:    "absent customer",
			mutate:  func(f *commands.CreateTransactionForm) { f.Customer = nil },
			field:   "customer",
			message: "missing customer",
		},
		{
			name:    "customer is not an identifier",
			mutate:  func(f *commands.CreateTransactionForm) { f.Customer = "C1" },
			field:   "customer",
			message: "invalid customer",
		},
		{
			name:    "unparseable date",
			mutate:  func(f *commands.CreateTransactionForm) { f.Date = "not-a-date" },
			field:   "date",
			message: "invalid date",
		},
		{
			name:    "absent date",
			mutate:  func(f *commands.CreateTransactionForm) { f.Date = nil },
			field:   "date",
			message: "invalid date",
		},
		{
			name:    "empty hog selection",
			mutate:  func(f *commands.CreateTransactionForm) { f.Hogs = []any{} },
			field:   "hogs",
			message: "no hogs selected",
		},
		{
			name:    "absent hog selection",
			mutate:  func(f *commands.CreateTransactionForm) { f.Hogs = nil },
			field:   "hogs",
			message: "no hogs selected",
		},
		{
			name:    "hog entry is not an identifier",
			mutate:  func(f *commands.CreateTransactionForm) { f.Hogs = []any{"H1"} },
			field:   "hogs",
			message: "invalid hog selection",
		},
		{
			name: "hog listed twice",
			mutate: func(f *commands.CreateTransactionForm) {
				hogID := kernel.NewUUID().String()
				f.Hogs = []any{hogID, hogID}
			},
			field:   "hogs",
			message: "duplicate hog selection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := commands.NewCreateTransactionCommand(kernel.NewUUID(), form)

			require.Error(t, err)
			var validationErr *commands.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.FieldErrors[tt.field])
			assert.Len(t, validationErr.FieldErrors, 1)
		})
	}
}

func TestNewCreateTransactionCommand_CollectsAllFieldErrors(t *testing.T) {
	form := commands.CreateTransactionForm{
		Customer: "",
		Date:     "2024/01/15",
		Hogs:     []any{},
	}

	_, err := commands.NewCreateTransactionCommand(kernel.NewUUID(), form)

	require.Error(t, err)
	var validationErr *commands.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing customer", validationErr.FieldErrors["customer"])
	assert.Equal(t, "invalid date", validationErr.FieldErrors["date"])
	assert.Equal(t, "no hogs selected", validationErr.FieldErrors["hogs"])
}

func TestNewCreateTransactionCommand_EchoesSubmittedValues(t *testing.T) {
	hogID := kernel.NewUUID().String()
	customerID := kernel.NewUUID().String()
	form := commands.CreateTransactionForm{
		Customer: customerID,
		Date:     "not-a-date",
		Hogs:     []any{hogID},
	}

	_, err := commands.NewCreateTransactionCommand(kernel.NewUUID(), form)

	require.Error(t, err)
	var validationErr *commands.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, customerID, validationErr.Customer)
	assert.Equal(t, "not-a-date", validationErr.Date)
	assert.Equal(t, []string{hogID}, validationErr.Hogs)
}

func TestNewCreateTransactionCommand_MalformedShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*commands.CreateTransactionForm)
	}{
		{
			name:   "customer is not a string",
			mutate: func(f *commands.CreateTransactionForm) { f.Customer = 42 },
		},
		{
			name:   "date is not a string",
			mutate: func(f *commands.CreateTransactionForm) { f.Date = true },
		},
		{
			name:   "hogs is not a list",
			mutate: func(f *commands.CreateTransactionForm) { f.Hogs = "H1" },
		},
		{
			name:   "hog entry is not a string",
			mutate: func(f *commands.CreateTransactionForm) { f.Hogs = []any{"H1", 7} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := commands.NewCreateTransactionCommand(kernel.NewUUID(), form)

			require.Error(t, err)
			var malformedErr *commands.MalformedRequestError
			require.ErrorAs(t, err, &malformedErr)
			var validationErr *commands.ValidationError
			assert.False(t, errors.As(err, &validationErr))
		})
	}
}

func TestNewCreateTransactionCommand_InvalidTransactionID(t *testing.T) {
	_, err := commands.NewCreateTransactionCommand(kernel.UUID{}, validForm())

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateTransactionCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateTransactionCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTransactionCommandIsNotConstructed)
}
