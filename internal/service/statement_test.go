package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shelfrent-backend/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestBuildStatements(t *testing.T) {
	shelves := []domain.Shelf{
		{ID: 1, Number: 1, IsRented: true, CustomerID: intPtr(9)},
		{ID: 2, Number: 2, IsRented: true, CustomerID: intPtr(4)},
		{ID: 3, Number: 3, IsRented: true, CustomerID: intPtr(9)},
		{ID: 4, Number: 4},
		{ID: 5, Number: 5, IsRented: true, CustomerID: intPtr(9)},
		{ID: 6, Number: 6, IsRented: true, CustomerID: intPtr(9)},
		{ID: 7, Number: 7, IsRented: true},
		{ID: 8, Number: 8, IsRented: true, CustomerID: intPtr(12)},
	}
	customers := []domain.Customer{
		{ID: 4, Name: "Anna", Email: "anna@example.com"},
		{ID: 9, Name: "Bo", Email: "bo@example.com"},
	}

	got := BuildStatements(shelves, customers)
	require.Len(t, got, 3)

	assert.Equal(t, 4, got[0].CustomerID)
	assert.Equal(t, "Anna", got[0].CustomerName)
	assert.Equal(t, []int{2}, got[0].ShelfNumbers)
	assert.Equal(t, 850.0, got[0].PricePerShelf)
	assert.Equal(t, 850.0, got[0].MonthlyTotal)

	assert.Equal(t, 9, got[1].CustomerID)
	assert.Equal(t, []int{1, 3, 5, 6}, got[1].ShelfNumbers)
	assert.Equal(t, 4, got[1].ShelfCount)
	assert.Equal(t, 800.0, got[1].PricePerShelf)
	assert.Equal(t, 3200.0, got[1].MonthlyTotal)

	// Unknown customers are still billed
	assert.Equal(t, 12, got[2].CustomerID)
	assert.Empty(t, got[2].CustomerName)
	assert.Equal(t, 850.0, got[2].MonthlyTotal)
}

func TestBuildStatements_NothingRented(t *testing.T) {
	got := BuildStatements([]domain.Shelf{{ID: 1, Number: 1}}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInventoryService_Statements(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, InventoryOptions{})
		f.shelves.On("List", mock.Anything).Return([]domain.Shelf{
			{ID: 1, Number: 1, IsRented: true, CustomerID: intPtr(1)},
			{ID: 2, Number: 2, IsRented: true, CustomerID: intPtr(1)},
		}, nil)
		f.customers.On("List", mock.Anything).Return([]domain.Customer{{ID: 1, Name: "Anna"}}, nil)

		res := f.svc.Statements(ctx)
		assert.True(t, res.OK())
		assert.False(t, res.Fallback)
		assert.Equal(t, "Statements calculated.", res.Status)
		assert.Equal(t, "Statements calculated.", f.svc.LatestStatus())
		require.Len(t, res.Value, 1)
		assert.Equal(t, 1650.0, res.Value[0].MonthlyTotal)
	})

	t.Run("Offline uses placeholder data", func(t *testing.T) {
		f := newFixture(t, InventoryOptions{})
		f.shelves.On("List", mock.Anything).Return(nil, errOffline)
		f.customers.On("List", mock.Anything).Return(nil, errOffline)

		res := f.svc.Statements(ctx)
		assert.True(t, res.Fallback)
		assert.Equal(t, OutcomeConnectivity, res.Outcome)
		assert.Equal(t, "Offline – "+errOffline.Error(), res.Status)
		require.Len(t, res.Value, 1)
		assert.Equal(t, "Offline Customer 1", res.Value[0].CustomerName)
		assert.Equal(t, []int{3}, res.Value[0].ShelfNumbers)
		assert.Len(t, f.logLines(t), 2)
	})
}
