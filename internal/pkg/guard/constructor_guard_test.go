package guard_test

import (
	"errors"
	"testing"

	"hogtrade/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		require.NoError(t, g.Validate(customError))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type intakeRow struct {
		eartag string
		weight float64
		guard  guard.ConstructorGuard
	}

	var errIntakeRowNotConstructed = errors.New("intakeRow must be created via newIntakeRow")

	newIntakeRow := func(eartag string, weight float64) (intakeRow, error) {
		if eartag == "" {
			return intakeRow{}, errors.New("eartag is required")
		}
		if weight <= 0 {
			return intakeRow{}, errors.New("weight must be positive")
		}
		return intakeRow{
			eartag: eartag,
			weight: weight,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	validateRow := func(r intakeRow) error {
		return r.guard.Validate(errIntakeRowNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		row, err := newIntakeRow("5931", 110)
		require.NoError(t, err)
		require.NoError(t, validateRow(row))
		assert.Equal(t, "5931", row.eartag)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var row intakeRow // zero value
		err := validateRow(row)
		require.Error(t, err)
		assert.Equal(t, errIntakeRowNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newIntakeRow("", 110)
		require.Error(t, err)

		_, err = newIntakeRow("5931", 0)
		require.Error(t, err)
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}
