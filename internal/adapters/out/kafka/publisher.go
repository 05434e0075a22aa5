// Package kafka publishes order domain events to a Kafka topic as JSON,
// keyed by order code so all events of one order land in the same partition.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// eventEnvelope is the wire shape of one published event.
type eventEnvelope struct {
	Event      string    `json:"event"`
	OrderCode  string    `json:"orderCode"`
	OrderID    int64     `json:"orderId"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.EventPublisher on top of a Kafka writer.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates an event publisher writing to the given Kafka writer.
func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish writes one message per event, keyed by order code.
func (p *Publisher) Publish(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		aggregate := event.Order()
		payload, err := json.Marshal(eventEnvelope{
			Event:      string(event.Kind()),
			OrderCode:  aggregate.Code(),
			OrderID:    aggregate.ID(),
			CustomerID: aggregate.CustomerID(),
			Status:     string(aggregate.Status()),
			Total:      aggregate.Total().String(),
			OccurredAt: event.OccurredAt(),
		})
		if err != nil {
			return err
		}

		messages = append(messages, kafkago.Message{
			Key:   []byte(aggregate.Code()),
			Value: payload,
		})
	}

	return p.writer.WriteMessages(ctx, messages...)
}
