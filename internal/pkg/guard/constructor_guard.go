// Package guard provides a defensive construction marker for commands, queries
// and value objects. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value, keeping
// invariants enforced at the construction boundary.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs embedding it cannot bypass their constructors.
//
// Example:
//
//	type CreateTransactionCommand struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateTransactionCommand(...) (CreateTransactionCommand, error) {
//	    return CreateTransactionCommand{guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateTransactionCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
