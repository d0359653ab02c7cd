package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"dispatch/internal/pkg/config"
)

func NewSyncProducer(cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
