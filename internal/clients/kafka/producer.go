package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ads-billing/internal/observability"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing metering events to Kafka
type Producer struct {
	writer MessageWriter
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:  kafka.TCP(config.Brokers...),
		Topic: config.Topic,
		// events of one ad stay ordered within a partition
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Snappy,
		BatchSize:    100,
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}
	return NewProducerWithWriter(writer, logger)
}

// NewProducerWithWriter builds a producer over any writer.
func NewProducerWithWriter(writer MessageWriter, logger *observability.Logger) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage is the wire shape of one relayed metering event
type EventMessage struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	AdID             string `json:"ad_id"`
	SellerID         string `json:"seller_id,omitempty"`
	SourceIdentifier string `json:"source_identifier"`
	Outcome          string `json:"outcome"`
	Billed           bool   `json:"billed"`
	Amount           string `json:"amount"`
	Timestamp        string `json:"timestamp"`
}

func toKafkaMessage(event EventMessage) (kafka.Message, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event %s: %w", event.ID, err)
	}
	return kafka.Message{
		Key:   []byte(event.AdID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "outcome", Value: []byte(event.Outcome)},
		},
	}, nil
}

// PublishEvents publishes a batch of events. Either the whole batch is
// written or an error is returned.
func (p *Producer) PublishEvents(ctx context.Context, events []EventMessage) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := toKafkaMessage(event)
		if err != nil {
			p.logger.Error(ctx, "failed to encode event", err)
			return err
		}
		messages = append(messages, msg)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		p.logger.Error(ctx, "failed to write messages to kafka", err)
		return fmt.Errorf("failed to write messages to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published %d events to kafka", len(events)))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
