package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/playstack/video-catalog/internal/catalog/kafka"
	"github.com/playstack/video-catalog/internal/catalog/outbox"
	"github.com/playstack/video-catalog/internal/config"
	"github.com/playstack/video-catalog/internal/storage/postgres"
)

func run(ctx context.Context, logger zerolog.Logger) error {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer producer.Close()

	publisher, err := outbox.NewPublisher(outbox.PublisherConfig{
		Source:    postgres.NewOutboxRepo(db),
		Producer:  producer,
		Interval:  cfg.OutboxInterval,
		BatchSize: cfg.OutboxBatchSize,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("outbox publisher: %w", err)
	}

	return publisher.Start(ctx)
}
