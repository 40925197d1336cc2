package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"cadebeck-hr/internal/events"
	"cadebeck-hr/internal/messaging/kafka/consumer"
	"cadebeck-hr/internal/shared/config"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroup = "cadebeck-hr-payslip"

// RunConsumer generates payslips for paid payrolls and delivers queued
// payslip emails.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	newReader := func(topic string) *kafkago.Reader {
		return kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.KafkaBroker},
			Topic:          topic,
			GroupID:        consumerGroup,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
	}

	generateReader := newReader(events.PayrollPayslipRequestedTopic)
	defer generateReader.Close()
	emailReader := newReader(events.PayslipEmailRequestedTopic)
	defer emailReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.Run(ctx, generateReader,
			consumer.HandlePayrollPaid(m.PayslipService, logger),
			logger.Named("kafka.consumer.payroll_payslip"))
	}()
	go func() {
		defer wg.Done()
		consumer.Run(ctx, emailReader,
			consumer.HandlePayslipEmailRequested(m.PayslipService, logger),
			logger.Named("kafka.consumer.payslip_email"))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}
