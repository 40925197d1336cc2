package events

import "time"

const (
	PayrollPayslipRequestedTopic = "hr.payroll.payslip.requested.v1"

	EventTypePayrollPaid = "payroll.paid"
)

// PayrollPayslipRequestedEvent is emitted when a payroll is marked as paid
// and its payslip must be generated.
type PayrollPayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	Period      string    `json:"period"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
