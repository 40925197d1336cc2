package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

type EmployeeLoan struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LoanNumber         string          `gorm:"size:30;uniqueIndex;not null"`
	EmployeeID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Purpose            string          `gorm:"size:255"`
	Principal          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InterestRate       decimal.Decimal `gorm:"type:numeric(6,3);not null;default:0"` // annual, percent
	Installments       int             `gorm:"not null"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MonthlyInstallment decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RemainingBalance   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaidInstallments   int             `gorm:"not null;default:0"`
	Status             string          `gorm:"size:20;index;not null"`
	StartDate          time.Time       `gorm:"type:date"`
	CompletedAt        *time.Time
	CreatedBy          *uuid.UUID      `gorm:"type:uuid"`
	Repayments         []LoanRepayment `gorm:"foreignKey:LoanID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type LoanRepayment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LoanID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	PayrollID        *uuid.UUID      `gorm:"type:uuid;index"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PrincipalPortion decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InterestPortion  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	BalanceBefore    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	BalanceAfter     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RepaymentDate    time.Time       `gorm:"type:date;not null"`
	CreatedAt        time.Time
}

func (EmployeeLoan) TableName() string {
	return "employee_loans"
}

func (LoanRepayment) TableName() string {
	return "loan_repayments"
}
