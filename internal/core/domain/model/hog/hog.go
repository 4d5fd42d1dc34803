package hog

import (
	"errors"
	"fmt"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
)

var (
	// ErrHogIsNotConstructed is returned when a Hog instance was not created through
	// the NewHog or RestoreHog factory methods.
	ErrHogIsNotConstructed = errors.New("Hog must be created via NewHog or RestoreHog constructor")

	// ErrHogAlreadySold is returned when attempting to sell a hog that already
	// belongs to a transaction.
	ErrHogAlreadySold = errors.New("hog is already sold")

	// ErrEartagIsRequired is returned when attempting to create a hog without an ear-tag.
	ErrEartagIsRequired = errs.NewValueIsRequiredError("eartag")
)

// Hog represents a single animal unit tracked through delivery, inventory, and sale.
// It is the aggregate root of the allocation state machine: a hog arrives with a
// delivery, sits in inventory as Available, and is attached to exactly one
// transaction when sold.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty ear-tag
//   - Live weight must be positive (kilograms)
//   - Farmgate price must be non-negative (per kilogram)
//   - References a transaction if and only if it is Sold
//   - Can only be created through NewHog or RestoreHog
type Hog struct {
	// id is the unique identifier for the hog
	id kernel.UUID

	// eartag is the external identifier, unique within the active inventory
	eartag string

	// liveWeight is the recorded weight in kilograms at intake
	liveWeight float64

	// farmgatePrice is the agreed price per kilogram of live weight
	farmgatePrice float64

	// deliveryID is the delivery that introduced the hog (nil for legacy stock)
	deliveryID *kernel.UUID

	// transactionID is the sale the hog belongs to (nil while available)
	transactionID *kernel.UUID

	// status represents the current state in the allocation lifecycle
	status Status

	// isConstructed ensures the hog was created via a constructor
	isConstructed bool
}

// NewHog creates a hog at intake time. The hog starts in Available status with
// no transaction reference.
//
// Parameters:
//   - id: Unique identifier for the hog (must be valid UUID)
//   - eartag: External identifier (must be non-empty)
//   - liveWeight: Live weight in kilograms (must be positive)
//   - farmgatePrice: Price per kilogram (must be non-negative)
//   - deliveryID: The delivery introducing the hog, or nil
func NewHog(
	id kernel.UUID,
	eartag string,
	liveWeight float64,
	farmgatePrice float64,
	deliveryID *kernel.UUID,
) (*Hog, error) {
	h := &Hog{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		h.setID(id),
		h.setEartag(eartag),
		h.setLiveWeight(liveWeight),
		h.setFarmgatePrice(farmgatePrice),
		h.setDeliveryID(deliveryID),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHog reconstructs a hog from persistence, including its allocation
// state. It verifies the status/transaction consistency invariant so corrupted
// rows cannot produce an available hog that secretly belongs to a transaction.
func RestoreHog(
	id kernel.UUID,
	eartag string,
	liveWeight float64,
	farmgatePrice float64,
	deliveryID *kernel.UUID,
	status Status,
	transactionID *kernel.UUID,
) (*Hog, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveTransaction(transactionID != nil); err != nil {
		return nil, err
	}

	h, err := NewHog(id, eartag, liveWeight, farmgatePrice, deliveryID)
	if err != nil {
		return nil, err
	}

	h.status = status
	if transactionID != nil {
		if err = transactionID.Validate(); err != nil {
			return nil, err
		}
		txID := *transactionID
		h.transactionID = &txID
	}

	return h, nil
}

// Validate ensures the Hog instance was properly constructed.
func (h *Hog) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHogIsNotConstructed
	}

	return nil
}

// IsEqual compares two hogs by their unique identifiers.
func (h *Hog) IsEqual(other *Hog) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the hog's unique identifier.
func (h *Hog) ID() kernel.UUID {
	return h.id
}

// Eartag returns the hog's external identifier.
func (h *Hog) Eartag() string {
	return h.eartag
}

// LiveWeight returns the recorded live weight in kilograms.
func (h *Hog) LiveWeight() float64 {
	return h.liveWeight
}

// FarmgatePrice returns the agreed price per kilogram of live weight.
func (h *Hog) FarmgatePrice() float64 {
	return h.farmgatePrice
}

// Delivery returns the ID of the delivery that introduced the hog.
// Returns nil if the hog predates delivery tracking.
func (h *Hog) Delivery() *kernel.UUID {
	return h.deliveryID
}

// Transaction returns the ID of the transaction the hog was sold in.
// Returns nil while the hog is available.
func (h *Hog) Transaction() *kernel.UUID {
	return h.transactionID
}

// Status returns the current allocation status of the hog.
func (h *Hog) Status() Status {
	return h.status
}

// IsAvailable reports whether the hog can still be sold.
func (h *Hog) IsAvailable() bool {
	return h.status == Available && h.transactionID == nil
}

// Amount returns the hog's value: farmgate price per kilogram times live weight.
func (h *Hog) Amount() float64 {
	return h.farmgatePrice * h.liveWeight
}

// Sell attaches the hog to a transaction and transitions its status to Sold.
//
// Business rules:
//   - The transaction ID must be valid
//   - The hog must be Available; selling a Sold hog fails with ErrHogAlreadySold
//
// After a successful sale the hog is permanently excluded from the available
// inventory.
func (h *Hog) Sell(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	if h.status == Sold || h.transactionID != nil {
		return ErrHogAlreadySold
	}

	newStatus, err := h.status.Sell()
	if err != nil {
		return err
	}

	h.status = newStatus
	h.transactionID = &transactionID
	return nil
}

// setID validates and sets the hog's unique identifier.
func (h *Hog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

// setEartag validates and sets the hog's ear-tag.
func (h *Hog) setEartag(eartag string) error {
	if eartag == "" {
		return ErrEartagIsRequired
	}
	h.eartag = eartag
	return nil
}

// setLiveWeight validates and sets the live weight. Must be positive.
func (h *Hog) setLiveWeight(liveWeight float64) error {
	if liveWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"liveWeight is invalid",
			fmt.Errorf("%v is not greater than 0", liveWeight),
		)
	}
	h.liveWeight = liveWeight
	return nil
}

// setFarmgatePrice validates and sets the farmgate price. Must be non-negative.
func (h *Hog) setFarmgatePrice(farmgatePrice float64) error {
	if farmgatePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"farmgatePrice is invalid",
			fmt.Errorf("%v is negative", farmgatePrice),
		)
	}
	h.farmgatePrice = farmgatePrice
	return nil
}

// setDeliveryID validates and sets the optional delivery reference.
func (h *Hog) setDeliveryID(deliveryID *kernel.UUID) error {
	if deliveryID == nil {
		return nil
	}
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	id := *deliveryID
	h.deliveryID = &id
	return nil
}
