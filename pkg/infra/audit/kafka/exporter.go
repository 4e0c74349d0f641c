package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/kforum/moderation/pkg/infra/audit"
)

type Config struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("kafka host is required")
	}
	if c.Port == "" {
		return errors.New("kafka port is required")
	}
	if c.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}

type Exporter struct {
	cfg      Config
	producer *kafka.Producer
}

func NewKafkaExporter(cfg Config) (audit.Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return &Exporter{
		cfg:      cfg,
		producer: producer,
	}, nil
}

func (e *Exporter) Publish(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}
	topic := e.cfg.Topic
	return e.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.EntityID),
		Value:          payload,
	}, nil)
}

// Close drains in-flight messages before releasing the producer.
func (e *Exporter) Close() error {
	e.producer.Flush(5000)
	e.producer.Close()
	return nil
}
