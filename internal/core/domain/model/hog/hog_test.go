package hog_test

import (
	"testing"

	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHog(t *testing.T) {
	validID := kernel.NewUUID()
	deliveryID := kernel.NewUUID()

	t.Run("should create valid hog with all valid parameters", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", 110, 80, &deliveryID)

		require.NoError(t, err)
		assert.NotNil(t, h)
		require.NoError(t, h.Validate())
		assert.True(t, h.ID().IsEqual(validID))
		assert.Equal(t, "5931", h.Eartag())
		assert.InDelta(t, 110, h.LiveWeight(), 0)
		assert.InDelta(t, 80, h.FarmgatePrice(), 0)
		assert.Equal(t, hog.Available, h.Status())
		assert.True(t, h.IsAvailable())
		assert.Nil(t, h.Transaction())
		require.NotNil(t, h.Delivery())
		assert.True(t, h.Delivery().IsEqual(deliveryID))
	})

	t.Run("should create hog without delivery reference", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", 110, 80, nil)

		require.NoError(t, err)
		assert.Nil(t, h.Delivery())
	})

	t.Run("should accept zero farmgate price", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", 110, 0, nil)

		require.NoError(t, err)
		assert.InDelta(t, 0, h.FarmgatePrice(), 0)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		h, err := hog.NewHog(invalidID, "5931", 110, 80, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty eartag", func(t *testing.T) {
		h, err := hog.NewHog(validID, "", 110, 80, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, hog.ErrEartagIsRequired)
	})

	t.Run("should fail with zero live weight", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", 0, 80, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "liveWeight is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative live weight", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", -12.5, 80, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "liveWeight is invalid")
	})

	t.Run("should fail with negative farmgate price", func(t *testing.T) {
		h, err := hog.NewHog(validID, "5931", 110, -1, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "farmgatePrice is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		h, err := hog.NewHog(invalidID, "", -1, -1, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "eartag")
		assert.Contains(t, err.Error(), "liveWeight is invalid")
		assert.Contains(t, err.Error(), "farmgatePrice is invalid")
	})
}

func TestRestoreHog(t *testing.T) {
	id := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	transactionID := kernel.NewUUID()

	t.Run("should restore available hog", func(t *testing.T) {
		h, err := hog.RestoreHog(id, "5931", 110, 80, &deliveryID, hog.Available, nil)

		require.NoError(t, err)
		assert.Equal(t, hog.Available, h.Status())
		assert.True(t, h.IsAvailable())
		assert.Nil(t, h.Transaction())
	})

	t.Run("should restore sold hog with transaction reference", func(t *testing.T) {
		h, err := hog.RestoreHog(id, "5931", 110, 80, &deliveryID, hog.Sold, &transactionID)

		require.NoError(t, err)
		assert.Equal(t, hog.Sold, h.Status())
		assert.False(t, h.IsAvailable())
		require.NotNil(t, h.Transaction())
		assert.True(t, h.Transaction().IsEqual(transactionID))
	})

	t.Run("should reject sold status without transaction reference", func(t *testing.T) {
		h, err := hog.RestoreHog(id, "5931", 110, 80, nil, hog.Sold, nil)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject available status with transaction reference", func(t *testing.T) {
		h, err := hog.RestoreHog(id, "5931", 110, 80, nil, hog.Available, &transactionID)

		require.Error(t, err)
		assert.Nil(t, h)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		h, err := hog.RestoreHog(id, "5931", 110, 80, nil, hog.Unknown, nil)

		require.Error(t, err)
		assert.Nil(t, h)
	})
}

func TestHog_Sell(t *testing.T) {
	t.Run("should sell available hog", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)
		require.NoError(t, err)

		transactionID := kernel.NewUUID()
		require.NoError(t, h.Sell(transactionID))

		assert.Equal(t, hog.Sold, h.Status())
		assert.False(t, h.IsAvailable())
		require.NotNil(t, h.Transaction())
		assert.True(t, h.Transaction().IsEqual(transactionID))
	})

	t.Run("should fail to sell hog twice", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)
		require.NoError(t, err)

		firstTransaction := kernel.NewUUID()
		require.NoError(t, h.Sell(firstTransaction))

		secondTransaction := kernel.NewUUID()
		err = h.Sell(secondTransaction)

		require.Error(t, err)
		assert.ErrorIs(t, err, hog.ErrHogAlreadySold)
		// The first transaction keeps the hog.
		assert.True(t, h.Transaction().IsEqual(firstTransaction))
	})

	t.Run("should fail with invalid transaction ID", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)
		require.NoError(t, err)

		var invalidID kernel.UUID
		err = h.Sell(invalidID)

		require.Error(t, err)
		assert.True(t, h.IsAvailable())
	})
}

func TestHog_Amount(t *testing.T) {
	t.Run("should compute price per kilogram times live weight", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)
		require.NoError(t, err)

		assert.InDelta(t, 8800, h.Amount(), 0)
	})

	t.Run("should compute zero amount for zero price", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 0, nil)
		require.NoError(t, err)

		assert.InDelta(t, 0, h.Amount(), 0)
	})
}

func TestHog_Validate(t *testing.T) {
	t.Run("should validate constructed hog", func(t *testing.T) {
		h, err := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)
		require.NoError(t, err)
		require.NoError(t, h.Validate())
	})

	t.Run("should reject zero value hog", func(t *testing.T) {
		var h hog.Hog
		err := h.Validate()

		require.Error(t, err)
		assert.Equal(t, hog.ErrHogIsNotConstructed, err)
	})

	t.Run("should reject nil hog", func(t *testing.T) {
		var h *hog.Hog
		err := h.Validate()

		require.Error(t, err)
		assert.Equal(t, hog.ErrHogIsNotConstructed, err)
	})
}

func TestHog_IsEqual(t *testing.T) {
	t.Run("should compare hogs by ID", func(t *testing.T) {
		id := kernel.NewUUID()
		h1, _ := hog.NewHog(id, "5931", 110, 80, nil)
		h2, _ := hog.NewHog(id, "5744", 121, 85, nil)
		h3, _ := hog.NewHog(kernel.NewUUID(), "5931", 110, 80, nil)

		assert.True(t, h1.IsEqual(h2))
		assert.False(t, h1.IsEqual(h3))
		assert.False(t, h1.IsEqual(nil))
	})
}
