package loan

import "github.com/shopspring/decimal"

type CreateLoanRequest struct {
	EmployeeID   string          `json:"employee_id" binding:"required,uuid"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Installments int             `json:"installments" binding:"required"`
	StartDate    string          `json:"start_date" binding:"required"`
	Purpose      string          `json:"purpose" binding:"max=255"`
}

type RepaymentResponse struct {
	ID               string          `json:"id"`
	PayrollID        *string         `json:"payroll_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	BalanceBefore    decimal.Decimal `json:"balance_before"`
	BalanceAfter     decimal.Decimal `json:"balance_after"`
	RepaymentDate    string          `json:"repayment_date"`
}

type LoanResponse struct {
	ID                 string              `json:"id"`
	LoanNumber         string              `json:"loan_number"`
	EmployeeID         string              `json:"employee_id"`
	Purpose            string              `json:"purpose,omitempty"`
	Principal          decimal.Decimal     `json:"principal"`
	InterestRate       decimal.Decimal     `json:"interest_rate"`
	Installments       int                 `json:"installments"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	MonthlyInstallment decimal.Decimal     `json:"monthly_installment"`
	RemainingBalance   decimal.Decimal     `json:"remaining_balance"`
	PaidInstallments   int                 `json:"paid_installments"`
	Status             string              `json:"status"`
	StartDate          string              `json:"start_date"`
	CompletedAt        *string             `json:"completed_at,omitempty"`
	Repayments         []RepaymentResponse `json:"repayments,omitempty"`
}
