package consumer

import (
	"context"
	"encoding/json"

	"cadebeck-hr/internal/events"
	"cadebeck-hr/internal/payslip"
	"cadebeck-hr/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipGenerator is the slice of payslip.Service used by the generation
// consumer.
type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, actorID, payrollID string) (payslip.PayslipResponse, error)
}

type PayslipSender interface {
	SendPayslipEmail(ctx context.Context, actorID, id string) (payslip.EmailResult, error)
}

// HandlePayrollPaid renders the payslip of a payroll that was marked paid.
func HandlePayrollPaid(service PayslipGenerator, logger *zap.Logger) HandlerFunc {
	log := logger.Named("kafka.consumer.payroll_payslip")
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return decodeError{err: err}
		}

		resp, err := service.GeneratePayslip(ctx, event.RequestedBy, event.PayrollID)
		if err != nil {
			return err
		}

		log.Info("payroll payslip generated",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("payroll_id", event.PayrollID),
			zap.String("payslip_number", resp.PayslipNumber),
		)
		return nil
	}
}

// HandlePayslipEmailRequested sends one queued payslip email. A recorded
// delivery failure is not retried.
func HandlePayslipEmailRequested(service PayslipSender, logger *zap.Logger) HandlerFunc {
	log := logger.Named("kafka.consumer.payslip_email")
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipEmailRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return decodeError{err: err}
		}

		res, err := service.SendPayslipEmail(ctx, event.RequestedBy, event.PayslipID)
		if err != nil {
			return err
		}

		log.Info("payslip email processed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("payslip_id", event.PayslipID),
			zap.String("status", res.Status),
			zap.String("code", res.Code),
		)
		return nil
	}
}
