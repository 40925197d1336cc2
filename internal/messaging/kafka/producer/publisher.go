package producer

import (
	"context"
	"errors"

	"cadebeck-hr/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafkago.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func toMessage(event kafka.OutboxEvent) kafkago.Message {
	return kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: kafka.HeaderRequestID, Value: []byte(event.RequestID)},
		},
	}
}

// publishBatch writes all events in one call and returns one error slot per
// event. A kafkago.WriteErrors result pins failures to single messages; any
// other error fails the whole batch.
func publishBatch(ctx context.Context, writer MessageWriter, events []kafka.OutboxEvent) []error {
	msgs := make([]kafkago.Message, len(events))
	for i, event := range events {
		msgs[i] = toMessage(event)
	}

	results := make([]error, len(events))
	err := writer.WriteMessages(ctx, msgs...)
	if err == nil {
		return results
	}

	var writeErrs kafkago.WriteErrors
	if errors.As(err, &writeErrs) && len(writeErrs) == len(events) {
		copy(results, writeErrs)
		return results
	}

	for i := range results {
		results[i] = err
	}
	return results
}
