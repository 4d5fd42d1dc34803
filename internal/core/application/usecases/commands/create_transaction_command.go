package commands

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

// transactionDateLayout is the calendar date format accepted on submissions.
const transactionDateLayout = "2006-01-02"

var ErrCreateTransactionCommandIsNotConstructed = errors.New(
	"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor",
)

// CreateTransactionForm carries a raw sale submission exactly as received
// from the outside world. Fields are deliberately untyped: submissions come
// from external forms and may be malformed in shape as well as in value,
// and the two failure modes are reported differently.
type CreateTransactionForm struct {
	Customer any
	Date     any
	Hogs     any
}

// CreateTransactionCommand represents a validated request to sell a set of
// available hogs to a customer.
//
// Validation happens in two passes. The shape pass rejects submissions whose
// fields have the wrong type (a non-string customer, a hogs field that is not
// a list of strings) with a MalformedRequestError before any field checks run.
// The field pass then collects every value-level problem (missing customer,
// unparseable date, empty hog selection) into a single ValidationError so the
// caller can render all field errors at once.
//
// Example:
//
//	txID := kernel.NewUUID()
//	cmd, err := NewCreateTransactionCommand(txID, CreateTransactionForm{
//	    Customer: "0c39f0bc-7c9e-4c9b-9a35-4b1f0ad4b521",
//	    Date:     "2024-01-15",
//	    Hogs:     []any{"c3b4a4a0-9df6-4f5e-86d9-4f5a4f3f2e1d"},
//	})
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID   kernel.UUID
	customerID      kernel.UUID
	transactionDate time.Time
	hogIDs          []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand validates a raw sale submission and builds the
// command. Returns *MalformedRequestError when the submission shape is wrong,
// *ValidationError when one or more field values are invalid.
func NewCreateTransactionCommand(
	transactionID kernel.UUID,
	form CreateTransactionForm,
) (CreateTransactionCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return CreateTransactionCommand{}, err
	}

	customerText, dateText, hogTexts, err := checkFormShape(form)
	if err != nil {
		return CreateTransactionCommand{}, err
	}

	cmd := CreateTransactionCommand{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	fieldErrors := make(map[string]string)

	if customerText == "" {
		fieldErrors["customer"] = "missing customer"
	} else if cmd.customerID, err = kernel.UUIDFromString(customerText); err != nil {
		fieldErrors["customer"] = "invalid customer"
	}

	if cmd.transactionDate, err = time.Parse(transactionDateLayout, dateText); err != nil {
		fieldErrors["date"] = "invalid date"
	}

	if len(hogTexts) == 0 {
		fieldErrors["hogs"] = "no hogs selected"
	} else {
		cmd.hogIDs = make([]kernel.UUID, 0, len(hogTexts))
		seen := make(map[kernel.UUID]bool, len(hogTexts))
		for _, hogText := range hogTexts {
			hogID, parseErr := kernel.UUIDFromString(hogText)
			if parseErr != nil {
				fieldErrors["hogs"] = "invalid hog selection"
				break
			}
			if seen[hogID] {
				fieldErrors["hogs"] = "duplicate hog selection"
				break
			}
			seen[hogID] = true
			cmd.hogIDs = append(cmd.hogIDs, hogID)
		}
	}

	if len(fieldErrors) > 0 {
		return CreateTransactionCommand{}, NewValidationError(fieldErrors, customerText, dateText, hogTexts)
	}

	return cmd, nil
}

// checkFormShape verifies field types before any value-level validation.
// Absent (nil) fields pass the shape check as zero values; the field pass
// reports them as missing.
func checkFormShape(form CreateTransactionForm) (customer, date string, hogs []string, err error) {
	var ok bool

	if form.Customer != nil {
		if customer, ok = form.Customer.(string); !ok {
			return "", "", nil, NewMalformedRequestError("customer must be a string")
		}
	}

	if form.Date != nil {
		if date, ok = form.Date.(string); !ok {
			return "", "", nil, NewMalformedRequestError("date must be a string")
		}
	}

	if form.Hogs != nil {
		entries, ok := form.Hogs.([]any)
		if !ok {
			return "", "", nil, NewMalformedRequestError("hogs must be a list")
		}

		hogs = make([]string, 0, len(entries))
		for _, entry := range entries {
			text, ok := entry.(string)
			if !ok {
				return "", "", nil, NewMalformedRequestError("hogs must be a list of strings")
			}
			hogs = append(hogs, text)
		}
	}

	return customer, date, hogs, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTransactionCommandIsNotConstructed if validation fails.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

// TransactionID returns the identifier assigned to the new transaction.
func (c CreateTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// CustomerID returns the buying customer's identifier.
func (c CreateTransactionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TransactionDate returns the parsed sale date.
func (c CreateTransactionCommand) TransactionDate() time.Time {
	return c.transactionDate
}

// HogIDs returns the identifiers of the hogs being sold.
func (c CreateTransactionCommand) HogIDs() []kernel.UUID {
	return c.hogIDs
}
