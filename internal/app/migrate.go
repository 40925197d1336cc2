package app

import (
	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/employee"
	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/payroll"
	"cadebeck-hr/internal/payslip"

	"gorm.io/gorm"
)

// rawSchema covers tables that are accessed through plain SQL.
var rawSchema = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		request_id TEXT,
		aggregate_type VARCHAR(50) NOT NULL,
		aggregate_id TEXT NOT NULL,
		event_type VARCHAR(100) NOT NULL,
		topic VARCHAR(150) NOT NULL,
		payload JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		retry_count INT NOT NULL DEFAULT 0,
		error_message TEXT,
		next_retry_at TIMESTAMPTZ,
		processed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
		ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE TABLE IF NOT EXISTS counters (
		counter_type VARCHAR(50) PRIMARY KEY,
		last_value BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates or updates the schema. The composite unique index on
// payrolls comes from the gorm tags.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&employee.User{},
		&employee.Employee{},
		&loan.EmployeeLoan{},
		&payroll.Payroll{},
		&payroll.PayrollAllowance{},
		&payroll.PayrollDeduction{},
		&loan.LoanRepayment{},
		&payslip.Payslip{},
		&audit.Log{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range rawSchema {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
