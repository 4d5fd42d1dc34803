package delivery

import (
	"errors"
	"fmt"
	"time"

	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

	// ErrArrivalDateIsRequired is returned when attempting to record a delivery without an arrival date.
	ErrArrivalDateIsRequired = errs.NewValueIsRequiredError("arrivalDate")

	// ErrNoHogsInIntake is returned when attempting to record a delivery with no hogs.
	ErrNoHogsInIntake = errs.NewValueIsRequiredError("hogs")

	// ErrHogNotFromThisDelivery is returned when restoring a delivery whose hog
	// collection contains a hog referencing a different delivery.
	ErrHogNotFromThisDelivery = errors.New("hog does not reference this delivery")
)

// HogIntake describes one hog as reported on the supplier's intake sheet.
// The delivery constructor turns each row into a Hog aggregate.
type HogIntake struct {
	Eartag        string
	LiveWeight    float64
	FarmgatePrice float64
}

// Delivery represents a batch intake event from one supplier. It is the
// aggregate that introduces hogs into inventory: the hogs are created together
// with the delivery and every one of them back-references it.
//
// Invariants:
//   - Must have a valid identifier, a non-zero arrival date and a valid supplier reference
//   - Mode of payment is free text; the empty string is a valid "unspecified" value
//   - Every hog in the collection references this delivery
//   - The hog collection is immutable after intake
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// arrivalDate is when the batch arrived
	arrivalDate time.Time

	// modeOfPayment is free text agreed with the supplier; may be empty
	modeOfPayment string

	// supplierID references the supplier the batch came from
	supplierID kernel.UUID

	// hogs is the ordered collection introduced by this delivery
	hogs []*hog.Hog

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery records a delivery at intake time. Each intake row is turned
// into a new Available hog referencing the delivery, so the back-reference
// invariant holds by construction. The intake must contain at least one hog.
func NewDelivery(
	id kernel.UUID,
	arrivalDate time.Time,
	modeOfPayment string,
	supplierID kernel.UUID,
	intakes []HogIntake,
) (*Delivery, error) {
	d := &Delivery{
		modeOfPayment: modeOfPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setArrivalDate(arrivalDate),
		d.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	if len(intakes) == 0 {
		return nil, ErrNoHogsInIntake
	}

	d.hogs = make([]*hog.Hog, 0, len(intakes))
	for i, intake := range intakes {
		deliveryID := d.id
		h, err := hog.NewHog(kernel.NewUUID(), intake.Eartag, intake.LiveWeight, intake.FarmgatePrice, &deliveryID)
		if err != nil {
			return nil, fmt.Errorf("intake row %d: %w", i, err)
		}
		d.hogs = append(d.hogs, h)
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence together with its
// hogs. Unlike NewDelivery, an empty hog collection is accepted: a delivery
// with zero hogs is an unusual but legitimate stored state. Every supplied hog
// must reference the delivery being restored.
func RestoreDelivery(
	id kernel.UUID,
	arrivalDate time.Time,
	modeOfPayment string,
	supplierID kernel.UUID,
	hogs []*hog.Hog,
) (*Delivery, error) {
	d := &Delivery{
		modeOfPayment: modeOfPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setArrivalDate(arrivalDate),
		d.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	d.hogs = make([]*hog.Hog, 0, len(hogs))
	for _, h := range hogs {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if h.Delivery() == nil || !h.Delivery().IsEqual(id) {
			return nil, ErrHogNotFromThisDelivery
		}
		d.hogs = append(d.hogs, h)
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ArrivalDate returns when the batch arrived.
func (d *Delivery) ArrivalDate() time.Time {
	return d.arrivalDate
}

// ModeOfPayment returns the stored payment terms; may be the empty string.
func (d *Delivery) ModeOfPayment() string {
	return d.modeOfPayment
}

// Supplier returns the ID of the supplier the batch came from.
func (d *Delivery) Supplier() kernel.UUID {
	return d.supplierID
}

// Hogs returns the ordered hog collection introduced by this delivery.
// The returned slice is a copy; the collection itself cannot be modified.
func (d *Delivery) Hogs() []*hog.Hog {
	hogs := make([]*hog.Hog, len(d.hogs))
	copy(hogs, d.hogs)
	return hogs
}

// setID validates and sets the delivery's unique identifier.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setArrivalDate validates and sets the arrival date.
func (d *Delivery) setArrivalDate(arrivalDate time.Time) error {
	if arrivalDate.IsZero() {
		return ErrArrivalDateIsRequired
	}
	d.arrivalDate = arrivalDate
	return nil
}

// setSupplierID validates and sets the supplier reference.
func (d *Delivery) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	d.supplierID = supplierID
	return nil
}
