package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"gobeer/internal/pkg/logger"
)

// Retentativas ficam a cargo do próprio producer (Producer.Retry).
const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 100 * time.Millisecond
)

// KafkaPublisher publica eventos num tópico Kafka via SyncProducer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logger.Logger
}

// NewKafkaPublisher conecta aos brokers com acks=all e producer idempotente.
func NewKafkaPublisher(brokers []string, topic string, log logger.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = defaultMaxRetries
	config.Producer.Retry.Backoff = defaultRetryBackoff
	config.Producer.Timeout = 5 * time.Second
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar o producer Kafka: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, topic, log), nil
}

// NewKafkaPublisherWithProducer recebe um producer já criado (ex.: mocks.SyncProducer).
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, log logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   log,
	}
}

func (p *KafkaPublisher) message(event Event) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar evento: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.EventType())},
			{Key: []byte("event-id"), Value: []byte(uuid.New().String())},
			{Key: []byte("timestamp"), Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}
	if key := event.PartitionKey(); key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	return msg, nil
}

// Publish envia o evento uma única vez; o producer já aplica Retry.Max com backoff.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("contexto cancelado: %w", err)
	}

	msg, err := p.message(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Warn("Falha ao publicar evento no Kafka.", map[string]interface{}{
			"topic":      p.topic,
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
		return fmt.Errorf("falha ao publicar evento %s: %w", event.EventType(), err)
	}

	p.logger.Info("Evento publicado no Kafka.", map[string]interface{}{
		"topic":      p.topic,
		"partition":  partition,
		"offset":     offset,
		"event_type": event.EventType(),
	})
	return nil
}

// Close encerra o producer.
func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
