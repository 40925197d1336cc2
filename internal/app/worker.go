package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cadebeck-hr/internal/messaging/kafka/producer"
	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes outbox events and sweeps expired payslip files.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := connectInfra(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	m, err := buildModules(cfg, in, logger)
	if err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, m.OutboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)
	go m.Cleanup.Run(ctx, cfg.CleanupInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
