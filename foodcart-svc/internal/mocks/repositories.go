package mocks

import (
	"context"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) ExistingProductIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	ret := _m.Called(ctx, ids)
	var r0 map[int]bool
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int]bool)
	}
	return r0, ret.Error(1)
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) ListAvailableMenu(ctx context.Context, productIDs []int) ([]domain.MenuEntry, error) {
	ret := _m.Called(ctx, productIDs)
	var r0 []domain.MenuEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuEntry)
	}
	return r0, ret.Error(1)
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error) {
	ret := _m.Called(ctx, intent)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int, from, to domain.OrderStatus) (bool, error) {
	ret := _m.Called(ctx, orderID, from, to)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) AssignRestaurant(ctx context.Context, orderID, restaurantID int) error {
	ret := _m.Called(ctx, orderID, restaurantID)
	return ret.Error(0)
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CoordinateStore struct {
	mock.Mock
}

func (_m *CoordinateStore) GetLocation(ctx context.Context, address string) (*domain.GeocodeEntry, error) {
	ret := _m.Called(ctx, address)
	var r0 *domain.GeocodeEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.GeocodeEntry)
	}
	return r0, ret.Error(1)
}

func (_m *CoordinateStore) SaveLocation(ctx context.Context, entry domain.GeocodeEntry) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

func NewCoordinateStore(t testingT) *CoordinateStore {
	m := &CoordinateStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
