package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// GeocodeWarmer resolves delivery addresses of new orders ahead of the
// manager board.
type GeocodeWarmer struct {
	Reader   MessageReader
	Resolver Resolver
}

func NewGeocodeWarmer(reader MessageReader, resolver Resolver) *GeocodeWarmer {
	return &GeocodeWarmer{Reader: reader, Resolver: resolver}
}

// Start blocks until ctx is cancelled or the reader is closed.
func (w *GeocodeWarmer) Start(ctx context.Context) {
	log.Println("Starting geocode warmer consumer...")
	for {
		message, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Println("Geocode warmer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}
		w.Process(ctx, event)
	}
}

func (w *GeocodeWarmer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderCreated {
		return
	}
	if _, ok := w.Resolver.Resolve(ctx, event.Address); ok {
		log.Printf("Warmed coordinates for order %d", event.OrderID)
		return
	}
	log.Printf("Address of order %d could not be resolved", event.OrderID)
}
