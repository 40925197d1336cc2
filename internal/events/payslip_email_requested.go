package events

import "time"

const (
	PayslipEmailRequestedTopic = "hr.payroll.payslip.email.requested.v1"

	EventTypePayslipEmailRequested = "payslip.email_requested"
)

// PayslipEmailRequestedEvent carries one payslip per message so the consumer
// can commit each send independently.
type PayslipEmailRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PayslipID   string    `json:"payslip_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
