package queries_test

import (
	"testing"

	"hogtrade/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetDeliveriesQuery(2, 20)

	require.NoError(t, query.Validate())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 20, query.PageSize())
	assert.Equal(t, 20, query.Skip())
}

func TestNewGetDeliveriesQuery_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantPage int
		wantSize int
	}{
		{"zero page", 0, 20, 1, 20},
		{"negative page", -3, 20, 1, 20},
		{"zero page size", 2, 0, 2, 10},
		{"negative page size", 2, -1, 2, 10},
		{"both invalid", 0, 0, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := queries.NewGetDeliveriesQuery(tt.page, tt.pageSize)

			require.NoError(t, query.Validate())
			assert.Equal(t, tt.wantPage, query.Page())
			assert.Equal(t, tt.wantSize, query.PageSize())
			assert.Equal(t, tt.wantSize*(tt.wantPage-1), query.Skip())
		})
	}
}

func TestGetDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveriesQueryIsNotConstructed)
}
