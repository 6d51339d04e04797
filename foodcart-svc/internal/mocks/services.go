package mocks

import (
	"context"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) Submit(ctx context.Context, payload any) (*domain.Order, error) {
	ret := _m.Called(ctx, payload)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Create(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error) {
	ret := _m.Called(ctx, intent)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) AvailableProducts(ctx context.Context) ([]service.ProductView, error) {
	ret := _m.Called(ctx)
	var r0 []service.ProductView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.ProductView)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Banners() []domain.Banner {
	ret := _m.Called()
	var r0 []domain.Banner
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Banner)
	}
	return r0
}

func (_m *CatalogServiceInterface) AvailabilityMatrix(ctx context.Context) (*service.AvailabilityMatrix, error) {
	ret := _m.Called(ctx)
	var r0 *service.AvailabilityMatrix
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.AvailabilityMatrix)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderBoardInterface struct {
	mock.Mock
}

func (_m *OrderBoardInterface) Build(ctx context.Context) (*service.Board, error) {
	ret := _m.Called(ctx)
	var r0 *service.Board
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Board)
	}
	return r0, ret.Error(1)
}

func NewOrderBoardInterface(t testingT) *OrderBoardInterface {
	m := &OrderBoardInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderWorkflowInterface struct {
	mock.Mock
}

func (_m *OrderWorkflowInterface) Advance(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, status)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderWorkflowInterface) Assign(ctx context.Context, orderID, restaurantID int) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID, restaurantID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderWorkflowInterface) DeliveryQRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewOrderWorkflowInterface(t testingT) *OrderWorkflowInterface {
	m := &OrderWorkflowInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
