package hog

import (
	"fmt"

	"hogtrade/internal/pkg/errs"
)

// Status represents the allocation state of a hog in inventory.
// It implements a state machine with a single permitted transition so a hog
// can belong to at most one transaction.
//
// State transitions:
//
//	Available ──> Sold
//
// Sold is a final state; there is no way back to Available and no second sale.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status after intake. Available hogs may be
	// offered for sale and attached to a new transaction.
	Available

	// Sold indicates the hog has been attached to a transaction.
	// This is a final state with no further transitions allowed.
	Sold
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Sold:      "Sold",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Sold:      "Sold",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Available and Sold; Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateSell checks if the status allows a sale without performing the transition.
//
// Only Available hogs can be sold. Selling a Sold hog is the double-allocation
// case this state machine exists to reject.
func (s Status) ValidateSell() error {
	if s != Available {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to sell", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveTransaction validates the consistency between hog status and
// transaction attachment: a hog references a transaction if and only if it is Sold.
//
// Parameters:
//   - transaction: whether the hog has a transaction reference
func (s Status) ValidateCanHaveTransaction(transaction bool) error {
	if transaction && s != Sold {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a transaction", s.String()),
		)
	}

	if !transaction && s == Sold {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no transaction", s.String()),
		)
	}

	return nil
}

// Sell transitions the status to Sold.
//
// Valid transitions:
//   - Available -> Sold
//
// Invalid transitions:
//   - Sold -> Sold (a hog belongs to at most one transaction)
//   - Unknown -> Sold (invalid initial state)
//
// Returns (Sold, nil) on a valid transition, (0, error) otherwise.
func (s Status) Sell() (Status, error) {
	if err := s.ValidateSell(); err != nil {
		return 0, err
	}

	return Sold, nil
}
