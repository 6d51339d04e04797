package service

import (
	"context"

	"foodcart/foodcart-svc/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
	ExistingProductIDs(ctx context.Context, ids []int) (map[int]bool, error)
}

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailableMenu(ctx context.Context, productIDs []int) ([]domain.MenuEntry, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, from, to domain.OrderStatus) (bool, error)
	AssignRestaurant(ctx context.Context, orderID, restaurantID int) error
}

// CoordinateStore persists geocoder answers. GetLocation returns nil, nil
// for an address that was never stored.
type CoordinateStore interface {
	GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error)
	SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Resolver turns an address into coordinates. The bool is false when the
// address could not be resolved.
type Resolver interface {
	Resolve(ctx context.Context, address string) (domain.Coordinates, bool)
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
}

type OrderServiceInterface interface {
	Submit(ctx context.Context, payload any) (*domain.Order, error)
	Create(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error)
}

type CatalogServiceInterface interface {
	AvailableProducts(ctx context.Context) ([]ProductView, error)
	Banners() []domain.Banner
	AvailabilityMatrix(ctx context.Context) (*AvailabilityMatrix, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
}

type OrderBoardInterface interface {
	Build(ctx context.Context) (*Board, error)
}

type OrderWorkflowInterface interface {
	Advance(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error)
	Assign(ctx context.Context, orderID, restaurantID int) (*domain.Order, error)
	DeliveryQRCode(ctx context.Context, orderID int) ([]byte, error)
}
