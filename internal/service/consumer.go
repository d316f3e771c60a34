package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"food-order/internal/domain"
)

const defaultReadRetryDelay = time.Second

// Consumer turns order events into per-restaurant dish popularity.
type Consumer struct {
	Reader MessageReader
	Store  PopularityStore
	// RetryDelay is the pause after a failed read.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store PopularityStore) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultReadRetryDelay,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Println("Order event consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			if !c.wait(ctx) {
				log.Println("Order event consumer stopped")
				return
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}
		c.ProcessOrder(ctx, event)
	}
}

// wait pauses before the next read and reports false when ctx ends first.
func (c *Consumer) wait(ctx context.Context) bool {
	timer := time.NewTimer(c.RetryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}
	for _, item := range event.Items {
		if err := c.Store.Increment(ctx, event.RestaurantID, item.DishID, item.Quantity); err != nil {
			log.Printf("Error updating popularity for order %d: %v", event.OrderID, err)
			return
		}
	}
	log.Printf("Processed order %d for restaurant %d", event.OrderID, event.RestaurantID)
}
