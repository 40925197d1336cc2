package payroll

import (
	"time"

	"cadebeck-hr/internal/employee"
	"cadebeck-hr/internal/shared/jsonb"
	"cadebeck-hr/internal/tax"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

// Payroll is one employee's pay for one period. Money columns are numeric(14,2).
type Payroll struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Employee      *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
	PayrollPeriod string             `gorm:"size:7;not null;index;uniqueIndex:uq_payroll_employee_period"`
	PeriodStart   time.Time          `gorm:"type:date;not null"`
	PeriodEnd     time.Time          `gorm:"type:date;not null"`
	PayDate       time.Time          `gorm:"type:date;not null"`

	BasicSalary          decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	AllowancesDetail     jsonb.Column[map[string]decimal.Decimal] `gorm:"type:jsonb"`
	TotalAllowances      decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	GrossPay             decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	TaxableIncome        decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	PersonalRelief       decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	InsuranceRelief      decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	PAYE                 decimal.Decimal                          `gorm:"column:paye;type:numeric(14,2);not null;default:0"`
	NHIF                 decimal.Decimal                          `gorm:"column:nhif;type:numeric(14,2);not null;default:0"`
	NSSFTier1            decimal.Decimal                          `gorm:"column:nssf_tier1;type:numeric(14,2);not null;default:0"`
	NSSFTier2            decimal.Decimal                          `gorm:"column:nssf_tier2;type:numeric(14,2);not null;default:0"`
	NSSF                 decimal.Decimal                          `gorm:"column:nssf;type:numeric(14,2);not null;default:0"`
	DeductionsDetail     jsonb.Column[map[string]decimal.Decimal] `gorm:"type:jsonb"`
	TotalOtherDeductions decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions      decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay               decimal.Decimal                          `gorm:"type:numeric(14,2);not null;default:0"`
	TaxBreakdown         jsonb.Column[[]tax.BracketCharge]        `gorm:"type:jsonb"`
	TaxTableVersion      string                                   `gorm:"size:40"`

	Status      string     `gorm:"size:20;not null;default:'draft';index"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	PaidBy      *uuid.UUID `gorm:"type:uuid"`
	PaidAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payroll) TableName() string {
	return "payrolls"
}

// CanTransition enforces draft -> processed -> paid.
func (p Payroll) CanTransition(to string) bool {
	switch p.Status {
	case StatusDraft:
		return to == StatusProcessed
	case StatusProcessed:
		return to == StatusPaid
	default:
		return false
	}
}

// HasStatutoryFields reports whether the calculator ever ran on this row.
// Zero NSSF alone is legitimate (no basic salary), so only an all-zero set
// counts as missing.
func (p Payroll) HasStatutoryFields() bool {
	return !p.PAYE.IsZero() || !p.NHIF.IsZero() || !p.NSSF.IsZero()
}

// ApplyBreakdown copies a calculator result onto the payroll.
func (p *Payroll) ApplyBreakdown(b tax.Breakdown) {
	p.BasicSalary = b.BasicSalary
	p.TotalAllowances = b.TotalAllowances
	p.GrossPay = b.GrossPay
	p.TaxableIncome = b.TaxableIncome
	p.PersonalRelief = b.PAYE.PersonalRelief
	p.InsuranceRelief = b.PAYE.InsuranceRelief
	p.PAYE = b.PAYE.PAYE
	p.NHIF = b.NHIF
	p.NSSFTier1 = b.NSSF.Tier1
	p.NSSFTier2 = b.NSSF.Tier2
	p.NSSF = b.NSSF.Total
	p.TotalOtherDeductions = b.OtherDeductions
	p.TotalDeductions = b.TotalDeductions
	p.NetPay = b.NetPay
	p.TaxTableVersion = b.Version
	p.TaxBreakdown = jsonb.Of(b.PAYE.Brackets)
}

const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
)

// LineItem is the shape shared by allowances and deductions.
type LineItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayrollID     *uuid.UUID      `gorm:"type:uuid;index"`
	Category      string          `gorm:"size:60;not null"`
	Description   string          `gorm:"size:255"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsRecurring   bool            `gorm:"not null;default:false"`
	EffectiveDate time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	Status        string          `gorm:"size:20;not null;default:'active';index"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PayrollAllowance struct {
	LineItem
}

func (PayrollAllowance) TableName() string {
	return "payroll_allowances"
}

type PayrollDeduction struct {
	LineItem
}

func (PayrollDeduction) TableName() string {
	return "payroll_deductions"
}

type LineItemKind string

const (
	KindAllowance LineItemKind = "allowance"
	KindDeduction LineItemKind = "deduction"
)

func (k LineItemKind) Valid() bool {
	return k == KindAllowance || k == KindDeduction
}

func (k LineItemKind) table() string {
	if k == KindDeduction {
		return PayrollDeduction{}.TableName()
	}
	return PayrollAllowance{}.TableName()
}
