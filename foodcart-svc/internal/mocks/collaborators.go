package mocks

import (
	"context"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Geocoder struct {
	mock.Mock
}

func (_m *Geocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	ret := _m.Called(ctx, address)
	return ret.Get(0).(domain.Coordinates), ret.Error(1)
}

func NewGeocoder(t testingT) *Geocoder {
	m := &Geocoder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type Resolver struct {
	mock.Mock
}

func (_m *Resolver) Resolve(ctx context.Context, address string) (domain.Coordinates, bool) {
	ret := _m.Called(ctx, address)
	return ret.Get(0).(domain.Coordinates), ret.Bool(1)
}

func NewResolver(t testingT) *Resolver {
	m := &Resolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(address string) ([]byte, error) {
	ret := _m.Called(address)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
