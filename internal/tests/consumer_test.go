package tests

import (
	"errors"
	"testing"

	"af-restro/internal/domain"
	"af-restro/internal/mocks"
	"af-restro/internal/service"
)

func TestOrderConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupAnalytics func(*mocks.AnalyticsRecorder)
	}{
		{
			name: "records_every_item",
			event: domain.OrderEvent{
				Type:  "order_placed",
				Table: "12",
				Items: []domain.OrderEventItem{
					{DishID: "dish-1", Quantity: 2},
					{DishID: "dish-2", Quantity: 1},
				},
			},
			setupAnalytics: func(analytics *mocks.AnalyticsRecorder) {
				analytics.On("RecordDishOrder", "dish-1", 2).Return(nil)
				analytics.On("RecordDishOrder", "dish-2", 1).Return(nil)
			},
		},
		{
			name: "keeps_going_after_record_error",
			event: domain.OrderEvent{
				Type:  "order_placed",
				Table: "12",
				Items: []domain.OrderEventItem{
					{DishID: "dish-1", Quantity: 2},
					{DishID: "dish-2", Quantity: 1},
				},
			},
			setupAnalytics: func(analytics *mocks.AnalyticsRecorder) {
				analytics.On("RecordDishOrder", "dish-1", 2).Return(errors.New("redis error"))
				analytics.On("RecordDishOrder", "dish-2", 1).Return(nil)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsRecorder(t)
			testCase.setupAnalytics(analytics)

			consumer := &service.OrderConsumer{Analytics: analytics}
			consumer.ProcessOrder(testCase.event)
			analytics.AssertExpectations(t)
		})
	}
}

func TestOrderConsumer_IgnoresOtherEventTypes(t *testing.T) {
	analytics := mocks.NewAnalyticsRecorder(t)
	consumer := &service.OrderConsumer{Analytics: analytics}

	consumer.ProcessOrder(domain.OrderEvent{
		Type:  "unknown_type",
		Items: []domain.OrderEventItem{{DishID: "dish-1", Quantity: 1}},
	})
	analytics.AssertExpectations(t)
}
