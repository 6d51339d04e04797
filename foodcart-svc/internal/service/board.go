package service

import (
	"context"
	"fmt"

	"foodcart/foodcart-svc/internal/domain"
)

type OrderCard struct {
	domain.Order
	TotalPrice           string                      `json:"total_price"`
	AvailableRestaurants []domain.RestaurantDistance `json:"available_restaurants"`
}

type Board struct {
	UnassignedOrders []OrderCard `json:"unassigned_orders"`
	AssignedOrders   []OrderCard `json:"assigned_orders"`
}

// OrderBoard builds the manager view of all orders with the restaurants able
// to cook each of them.
type OrderBoard struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	resolver    Resolver
}

func NewOrderBoard(orders OrderRepository, restaurants RestaurantRepository, resolver Resolver) *OrderBoard {
	return &OrderBoard{orders: orders, restaurants: restaurants, resolver: resolver}
}

func (b *OrderBoard) Build(ctx context.Context) (*Board, error) {
	orders, err := b.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var union []int
	seen := map[int]struct{}{}
	for _, order := range orders {
		for _, id := range order.ProductIDs() {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				union = append(union, id)
			}
		}
	}

	var menu []domain.MenuEntry
	if len(union) > 0 {
		menu, err = b.restaurants.ListAvailableMenu(ctx, union)
		if err != nil {
			return nil, fmt.Errorf("list menu: %w", err)
		}
	}

	memo := NewMemoResolver(b.resolver)
	board := &Board{UnassignedOrders: []OrderCard{}, AssignedOrders: []OrderCard{}}
	for _, order := range orders {
		candidates := MatchRestaurants(menu, order.ProductIDs())
		card := OrderCard{
			Order:                order,
			TotalPrice:           order.TotalPrice().StringFixed(2),
			AvailableRestaurants: RankByDistance(ctx, memo, order.Address, candidates),
		}
		if order.RestaurantID == nil {
			board.UnassignedOrders = append(board.UnassignedOrders, card)
		} else {
			board.AssignedOrders = append(board.AssignedOrders, card)
		}
	}
	return board, nil
}

var _ OrderBoardInterface = (*OrderBoard)(nil)
