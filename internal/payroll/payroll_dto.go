package payroll

import (
	"cadebeck-hr/internal/tax"

	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	Period  string `json:"period" binding:"required"`
	PayDate string `json:"pay_date"`
}

type ProcessEmployeePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	PayDate    string `json:"pay_date"`
}

type BulkActionRequest struct {
	PayrollIDs []string `json:"payroll_ids" binding:"required,min=1,dive,uuid"`
}

type GetPayrollsFilterRequest struct {
	Period     string `form:"period"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type CreateLineItemRequest struct {
	Kind          LineItemKind    `json:"kind" binding:"required,oneof=allowance deduction"`
	EmployeeID    string          `json:"employee_id" binding:"required,uuid"`
	Category      string          `json:"category" binding:"required,max=60"`
	Description   string          `json:"description" binding:"max=255"`
	Amount        decimal.Decimal `json:"amount"`
	IsRecurring   bool            `json:"is_recurring"`
	EffectiveDate string          `json:"effective_date" binding:"required"`
	EndDate       *string         `json:"end_date"`
}

type PayrollResponse struct {
	ID                   string                     `json:"id"`
	EmployeeID           string                     `json:"employee_id"`
	StaffNumber          string                     `json:"staff_number,omitempty"`
	EmployeeName         string                     `json:"employee_name,omitempty"`
	Period               string                     `json:"period"`
	PayDate              string                     `json:"pay_date"`
	BasicSalary          decimal.Decimal            `json:"basic_salary"`
	Allowances           map[string]decimal.Decimal `json:"allowances"`
	TotalAllowances      decimal.Decimal            `json:"total_allowances"`
	GrossPay             decimal.Decimal            `json:"gross_pay"`
	TaxableIncome        decimal.Decimal            `json:"taxable_income"`
	PersonalRelief       decimal.Decimal            `json:"personal_relief"`
	InsuranceRelief      decimal.Decimal            `json:"insurance_relief"`
	PAYE                 decimal.Decimal            `json:"paye"`
	NHIF                 decimal.Decimal            `json:"nhif"`
	NSSFTier1            decimal.Decimal            `json:"nssf_tier1"`
	NSSFTier2            decimal.Decimal            `json:"nssf_tier2"`
	NSSF                 decimal.Decimal            `json:"nssf"`
	Deductions           map[string]decimal.Decimal `json:"deductions"`
	TotalOtherDeductions decimal.Decimal            `json:"total_other_deductions"`
	TotalDeductions      decimal.Decimal            `json:"total_deductions"`
	NetPay               decimal.Decimal            `json:"net_pay"`
	TaxBreakdown         []tax.BracketCharge        `json:"tax_breakdown,omitempty"`
	Status               string                     `json:"status"`
	ProcessedBy          *string                    `json:"processed_by,omitempty"`
	ApprovedBy           *string                    `json:"approved_by,omitempty"`
	ApprovedAt           *string                    `json:"approved_at,omitempty"`
	PaidBy               *string                    `json:"paid_by,omitempty"`
	PaidAt               *string                    `json:"paid_at,omitempty"`
}

type LineItemResponse struct {
	ID            string          `json:"id"`
	Kind          LineItemKind    `json:"kind"`
	EmployeeID    string          `json:"employee_id"`
	PayrollID     *string         `json:"payroll_id,omitempty"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	IsRecurring   bool            `json:"is_recurring"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date,omitempty"`
	Status        string          `json:"status"`
}

type LoanRepaymentResponse struct {
	LoanID           string          `json:"loan_id"`
	Amount           decimal.Decimal `json:"amount"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
}

type PayrollDetailResponse struct {
	PayrollResponse
	AllowanceItems []LineItemResponse      `json:"allowance_items"`
	DeductionItems []LineItemResponse      `json:"deduction_items"`
	LoanRepayments []LoanRepaymentResponse `json:"loan_repayments"`
}

// ItemError is the per-item failure record of a batch operation.
type ItemError struct {
	ID          string `json:"id"`
	StaffNumber string `json:"staff_number,omitempty"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

type ProcessPayrollResult struct {
	Period         string            `json:"period"`
	TotalEmployees int               `json:"total_employees"`
	ProcessedCount int               `json:"processed_count"`
	FailedCount    int               `json:"failed_count"`
	Processed      []PayrollResponse `json:"processed"`
	Errors         []ItemError       `json:"errors"`
	Warnings       []string          `json:"warnings,omitempty"`
}

type BulkActionResult struct {
	Requested    int               `json:"requested"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	Succeeded    []PayrollResponse `json:"succeeded"`
	Errors       []ItemError       `json:"errors"`
}

type PeriodSummaryResponse struct {
	Period        string          `json:"period"`
	TotalPayrolls int64           `json:"total_payrolls"`
	TotalGrossPay decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay   decimal.Decimal `json:"total_net_pay"`
	ByStatus      []StatusTotal   `json:"by_status"`
}
