// Package supplier contains the Supplier reference entity. Suppliers are
// read-only in this core: they are referenced by deliveries but never
// created or modified here.
package supplier

import (
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
)

var (
	// ErrSupplierIsNotConstructed is returned when using an improperly initialized Supplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

	// ErrNameIsRequired is returned when attempting to create a supplier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Supplier is a selling party referenced by deliveries.
type Supplier struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewSupplier creates a supplier with a valid ID and non-empty name.
func NewSupplier(id kernel.UUID, name string) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Supplier{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier's display name.
func (s *Supplier) Name() string {
	return s.name
}
