// Package customer contains the Customer reference entity. Customers are
// read-only in this core: they are referenced by transactions but never
// created or modified here.
package customer

import (
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is a buying party referenced by transactions.
type Customer struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewCustomer creates a customer with a valid ID and non-empty name.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Customer{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}
