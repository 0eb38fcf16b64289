package service

import (
	"context"
	"encoding/json"
	"errors"

	"af-restro/internal/domain"

	"github.com/segmentio/kafka-go"
)

// OrderConsumer drains order events from Kafka and records per-dish
// order counts for the popularity dashboard.
type OrderConsumer struct {
	Reader    *kafka.Reader
	Analytics AnalyticsRecorder
}

func NewOrderConsumer(reader *kafka.Reader, analytics AnalyticsRecorder) *OrderConsumer {
	return &OrderConsumer{Reader: reader, Analytics: analytics}
}

func (c *OrderConsumer) Start(ctx context.Context) {
	logger.Info().Msg("starting order analytics consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error().Err(err).Msg("error reading order event")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Error().Err(err).Msg("error unmarshaling order event")
			continue
		}

		if event.Type == "order_placed" {
			c.ProcessOrder(event)
		}
	}
}

func (c *OrderConsumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != "order_placed" {
		return
	}
	logger.Info().Str("table", event.Table).Int("items", len(event.Items)).Msg("processing order event")

	for _, item := range event.Items {
		if err := c.Analytics.RecordDishOrder(item.DishID, item.Quantity); err != nil {
			logger.Error().Err(err).Str("dish_id", item.DishID).Msg("error recording dish order")
		}
	}
}
