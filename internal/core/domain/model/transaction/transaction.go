package transaction

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance was
	// not created through the NewTransaction factory method.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

	// ErrTransactionDateIsRequired is returned when attempting to create a transaction without a date.
	ErrTransactionDateIsRequired = errs.NewValueIsRequiredError("transactionDate")

	// ErrNoHogsInTransaction is returned when attempting to create a transaction with an empty hog set.
	ErrNoHogsInTransaction = errs.NewValueIsRequiredError("hogs")
)

// Transaction represents a sale event to one customer, consuming one or more
// previously available hogs. The hog set is fixed at creation: transactions
// are never mutated afterwards. The association is non-owning: hogs are
// tagged with the transaction ID, not moved or destroyed.
type Transaction struct {
	// id is the unique identifier for the transaction
	id kernel.UUID

	// transactionDate is when the sale took place
	transactionDate time.Time

	// customerID references the buying customer
	customerID kernel.UUID

	// hogIDs are the hogs sold in this transaction; non-empty, immutable
	hogIDs []kernel.UUID

	// isConstructed ensures the transaction was created via NewTransaction
	isConstructed bool
}

// NewTransaction creates a sale of the given hogs to a customer.
// The hog set must be non-empty and every identifier must be valid;
// duplicates are rejected because a hog cannot be sold twice in one sale.
func NewTransaction(
	id kernel.UUID,
	transactionDate time.Time,
	customerID kernel.UUID,
	hogIDs []kernel.UUID,
) (*Transaction, error) {
	tx := &Transaction{
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setTransactionDate(transactionDate),
		tx.setCustomerID(customerID),
		tx.setHogIDs(hogIDs),
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}

	return nil
}

// IsEqual compares two transactions by their unique identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// TransactionDate returns when the sale took place.
func (t *Transaction) TransactionDate() time.Time {
	return t.transactionDate
}

// Customer returns the ID of the buying customer.
func (t *Transaction) Customer() kernel.UUID {
	return t.customerID
}

// Hogs returns the IDs of the hogs sold in this transaction.
// The returned slice is a copy; the set itself cannot be modified.
func (t *Transaction) Hogs() []kernel.UUID {
	hogIDs := make([]kernel.UUID, len(t.hogIDs))
	copy(hogIDs, t.hogIDs)
	return hogIDs
}

// setID validates and sets the transaction's unique identifier.
func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setTransactionDate validates and sets the sale date.
func (t *Transaction) setTransactionDate(transactionDate time.Time) error {
	if transactionDate.IsZero() {
		return ErrTransactionDateIsRequired
	}
	t.transactionDate = transactionDate
	return nil
}

// setCustomerID validates and sets the customer reference.
func (t *Transaction) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	t.customerID = customerID
	return nil
}

// setHogIDs validates and sets the hog set. Must be non-empty, valid, and free
// of duplicates.
func (t *Transaction) setHogIDs(hogIDs []kernel.UUID) error {
	if len(hogIDs) == 0 {
		return ErrNoHogsInTransaction
	}

	seen := make(map[string]struct{}, len(hogIDs))
	ids := make([]kernel.UUID, 0, len(hogIDs))
	for _, hogID := range hogIDs {
		if err := hogID.Validate(); err != nil {
			return err
		}
		key := hogID.String()
		if _, ok := seen[key]; ok {
			return errs.NewValueIsInvalidError("hogIDs contain duplicates")
		}
		seen[key] = struct{}{}
		ids = append(ids, hogID)
	}

	t.hogIDs = ids
	return nil
}
