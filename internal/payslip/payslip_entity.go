package payslip

import (
	"time"

	"cadebeck-hr/internal/payroll"

	"github.com/google/uuid"
)

const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)

// Payslip tracks the rendered document of one payroll. The file itself is
// temporary and may be gone; FilePath is only a hint.
type Payslip struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PayrollID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Payroll       *payroll.Payroll `gorm:"foreignKey:PayrollID;references:ID"`
	EmployeeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	PayslipNumber string           `gorm:"size:40;not null;uniqueIndex"`
	Period        string           `gorm:"size:7;not null"`
	FilePath      string           `gorm:"size:255;not null"`
	FileName      string           `gorm:"size:120;not null"`
	GeneratedAt   time.Time        `gorm:"not null"`
	EmailStatus   string           `gorm:"size:20;not null;default:'pending'"`
	EmailError    *string          `gorm:"type:text"`
	EmailedAt     *time.Time
	ViewedAt      *time.Time
	DownloadedAt  *time.Time
	DownloadCount int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}
