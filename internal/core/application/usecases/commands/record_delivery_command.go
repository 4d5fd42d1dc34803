package commands

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrRecordDeliveryCommandIsNotConstructed = errors.New(
		"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
	)
	ErrIntakeIsEmpty = errs.NewValueIsRequiredError("intakes")
)

// RecordDeliveryCommand represents a request to register a supplier delivery
// together with its batch of hogs. Mode of payment is free text and the empty
// string is a valid "unspecified" value, so it is accepted as-is.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	arrivalDate   time.Time
	modeOfPayment string
	supplierID    kernel.UUID
	intakes       []delivery.HogIntake

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a delivery intake.
// Requires a valid delivery ID, a non-zero arrival date, a valid supplier
// reference and at least one intake row.
func NewRecordDeliveryCommand(
	deliveryID kernel.UUID,
	arrivalDate time.Time,
	modeOfPayment string,
	supplierID kernel.UUID,
	intakes []delivery.HogIntake,
) (RecordDeliveryCommand, error) {
	cmd := RecordDeliveryCommand{
		modeOfPayment: modeOfPayment,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setArrivalDate(arrivalDate),
		cmd.setSupplierID(supplierID),
		cmd.setIntakes(intakes),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordDeliveryCommandIsNotConstructed if validation fails.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier assigned to the new delivery.
func (c RecordDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ArrivalDate returns the date the delivery arrived.
func (c RecordDeliveryCommand) ArrivalDate() time.Time {
	return c.arrivalDate
}

// ModeOfPayment returns the free-text payment arrangement; may be empty.
func (c RecordDeliveryCommand) ModeOfPayment() string {
	return c.modeOfPayment
}

// SupplierID returns the delivering supplier's identifier.
func (c RecordDeliveryCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Intakes returns the hog intake rows for this delivery.
func (c RecordDeliveryCommand) Intakes() []delivery.HogIntake {
	return c.intakes
}

func (c *RecordDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecordDeliveryCommand) setArrivalDate(arrivalDate time.Time) error {
	if arrivalDate.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDate")
	}

	c.arrivalDate = arrivalDate
	return nil
}

func (c *RecordDeliveryCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *RecordDeliveryCommand) setIntakes(intakes []delivery.HogIntake) error {
	if len(intakes) == 0 {
		return ErrIntakeIsEmpty
	}

	c.intakes = intakes
	return nil
}
