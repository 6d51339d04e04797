package service

import (
	"context"
	"errors"
	"fmt"

	"foodcart/foodcart-svc/internal/domain"
)

type OrderWorkflow struct {
	repo OrderRepository
	qr   QRGenerator
}

func NewOrderWorkflow(repo OrderRepository, qr QRGenerator) *OrderWorkflow {
	return &OrderWorkflow{repo: repo, qr: qr}
}

func (w *OrderWorkflow) load(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := w.repo.GetOrder(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get order %d: %w", ErrPersistence, orderID, err)
	}
	return order, nil
}

// Advance moves the order forward to status. Skipping steps is allowed,
// going back is not.
func (w *OrderWorkflow) Advance(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	order, err := w.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanAdvanceTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	moved, err := w.repo.UpdateOrderStatus(ctx, orderID, order.Status, status)
	if err != nil {
		return nil, fmt.Errorf("%w: update status: %w", ErrPersistence, err)
	}
	if !moved {
		return nil, fmt.Errorf("%w: order %d changed concurrently", ErrInvalidTransition, orderID)
	}
	return w.load(ctx, orderID)
}

func (w *OrderWorkflow) Assign(ctx context.Context, orderID, restaurantID int) (*domain.Order, error) {
	err := w.repo.AssignRestaurant(ctx, orderID, restaurantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: assign restaurant: %w", ErrPersistence, err)
	}
	return w.load(ctx, orderID)
}

func (w *OrderWorkflow) DeliveryQRCode(ctx context.Context, orderID int) ([]byte, error) {
	order, err := w.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return w.qr.Generate(order.Address)
}

var _ OrderWorkflowInterface = (*OrderWorkflow)(nil)
