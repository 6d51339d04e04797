package tests

import (
	"context"
	"testing"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/mocks"
	"foodcart/foodcart-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderBoard_Build(t *testing.T) {
	assigned := 1
	orders := []domain.Order{
		{ID: 2, Address: "customer-a", Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("100.50")},
			{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("50")},
		}},
		{ID: 1, Address: "customer-b", RestaurantID: &assigned, Items: []domain.OrderItem{
			{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("50")},
		}},
	}
	near := domain.Restaurant{ID: 1, Name: "Near", Address: "near"}
	far := domain.Restaurant{ID: 2, Name: "Far", Address: "far"}

	orderRepo := mocks.NewOrderRepository(t)
	orderRepo.On("ListOrders", mock.Anything).Return(orders, nil).Once()
	restRepo := mocks.NewRestaurantRepository(t)
	restRepo.On("ListAvailableMenu", mock.Anything, []int{1, 2}).Return([]domain.MenuEntry{
		{Restaurant: far, ProductID: 1},
		{Restaurant: far, ProductID: 2},
		{Restaurant: near, ProductID: 2},
	}, nil).Once()

	resolver := mocks.NewResolver(t)
	resolver.On("Resolve", mock.Anything, "customer-a").Return(moscow, true).Once()
	resolver.On("Resolve", mock.Anything, "customer-b").Return(moscow, true).Once()
	resolver.On("Resolve", mock.Anything, "far").Return(northOf(moscow, 5), true).Once()
	resolver.On("Resolve", mock.Anything, "near").Return(northOf(moscow, 2), true).Once()

	board, err := service.NewOrderBoard(orderRepo, restRepo, resolver).Build(context.Background())
	require.NoError(t, err)

	require.Len(t, board.UnassignedOrders, 1)
	unassigned := board.UnassignedOrders[0]
	assert.Equal(t, 2, unassigned.ID)
	assert.Equal(t, "251.00", unassigned.TotalPrice)
	require.Len(t, unassigned.AvailableRestaurants, 1)
	assert.Equal(t, "Far", unassigned.AvailableRestaurants[0].Name)

	require.Len(t, board.AssignedOrders, 1)
	assignedCard := board.AssignedOrders[0]
	assert.Equal(t, []any{2.0, 5.0}, distances(assignedCard.AvailableRestaurants))
	assert.Equal(t, "Near", assignedCard.AvailableRestaurants[0].Name)
}

func TestOrderBoard_Empty(t *testing.T) {
	orderRepo := mocks.NewOrderRepository(t)
	orderRepo.On("ListOrders", mock.Anything).Return([]domain.Order{}, nil).Once()

	board, err := service.NewOrderBoard(orderRepo, mocks.NewRestaurantRepository(t), mocks.NewResolver(t)).
		Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, board.UnassignedOrders)
	assert.NotNil(t, board.AssignedOrders)
}

func TestOrderBoard_ListFailure(t *testing.T) {
	orderRepo := mocks.NewOrderRepository(t)
	orderRepo.On("ListOrders", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := service.NewOrderBoard(orderRepo, mocks.NewRestaurantRepository(t), mocks.NewResolver(t)).
		Build(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
