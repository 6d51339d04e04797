package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func NewOrderCreatedEvent(order *domain.Order) domain.OrderEvent {
	return domain.OrderEvent{
		EventID:   uuid.NewString(),
		Type:      domain.EventOrderCreated,
		OrderID:   order.ID,
		Address:   order.Address,
		CreatedAt: order.CreatedAt,
	}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	event := NewOrderCreatedEvent(order)
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(order.ID)),
		Value: payload,
	})
}
