package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodcart/foodcart-svc/internal/domain"
)

const publishTimeout = 5 * time.Second

type OrderService struct {
	validator *OrderValidator
	repo      OrderRepository
	publisher OrderPublisher
}

// NewOrderService accepts a nil publisher when no broker is configured.
func NewOrderService(validator *OrderValidator, repo OrderRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{validator: validator, repo: repo, publisher: publisher}
}

func (s *OrderService) Submit(ctx context.Context, payload any) (*domain.Order, error) {
	intent, err := s.validator.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, intent)
}

// Create persists the intent as a new order. Every call creates a new order.
func (s *OrderService) Create(ctx context.Context, intent domain.OrderIntent) (*domain.Order, error) {
	order, err := s.repo.CreateOrder(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %w", ErrPersistence, err)
	}

	if s.publisher != nil {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishOrderCreated(pubCtx, order); err != nil {
			log.Printf("WARNING: publish order_created for order %d: %v", order.ID, err)
		}
	}
	return order, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
