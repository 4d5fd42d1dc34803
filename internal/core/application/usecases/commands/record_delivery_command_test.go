package commands_test

import (
	"testing"
	"time"

	"hogtrade/internal/core/application/usecases/commands"
	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntakes() []delivery.HogIntake {
	return []delivery.HogIntake{
		{Eartag: "E-100", LiveWeight: 110, FarmgatePrice: 80},
		{Eartag: "E-101", LiveWeight: 90, FarmgatePrice: 85},
	}
}

func TestNewRecordDeliveryCommand_Success(t *testing.T) {
	deliveryID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	arrivalDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewRecordDeliveryCommand(deliveryID, arrivalDate, "cash", supplierID, validIntakes())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	assert.True(t, cmd.SupplierID().IsEqual(supplierID))
	assert.Equal(t, arrivalDate, cmd.ArrivalDate())
	assert.Equal(t, "cash", cmd.ModeOfPayment())
	assert.Len(t, cmd.Intakes(), 2)
}

func TestNewRecordDeliveryCommand_EmptyModeOfPaymentIsValid(t *testing.T) {
	cmd, err := commands.NewRecordDeliveryCommand(
		kernel.NewUUID(),
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		"",
		kernel.NewUUID(),
		validIntakes(),
	)

	require.NoError(t, err)
	assert.Empty(t, cmd.ModeOfPayment())
}

func TestNewRecordDeliveryCommand_ValidationErrors(t *testing.T) {
	validDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		deliveryID  kernel.UUID
		arrivalDate time.Time
		supplierID  kernel.UUID
		intakes     []delivery.HogIntake
		wantErr     error
	}{
		{
			name:        "invalid delivery ID",
			deliveryID:  kernel.UUID{},
			arrivalDate: validDate,
			supplierID:  kernel.NewUUID(),
			intakes:     validIntakes(),
			wantErr:     kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:        "zero arrival date",
			deliveryID:  kernel.NewUUID(),
			arrivalDate: time.Time{},
			supplierID:  kernel.NewUUID(),
			intakes:     validIntakes(),
		},
		{
			name:        "invalid supplier ID",
			deliveryID:  kernel.NewUUID(),
			arrivalDate: validDate,
			supplierID:  kernel.UUID{},
			intakes:     validIntakes(),
			wantErr:     kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:        "no intake rows",
			deliveryID:  kernel.NewUUID(),
			arrivalDate: validDate,
			supplierID:  kernel.NewUUID(),
			intakes:     nil,
			wantErr:     commands.ErrIntakeIsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRecordDeliveryCommand(
				tt.deliveryID, tt.arrivalDate, "cash", tt.supplierID, tt.intakes,
			)

			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRecordDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RecordDeliveryCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordDeliveryCommandIsNotConstructed)
}
