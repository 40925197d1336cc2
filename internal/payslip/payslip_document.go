package payslip

import (
	"sort"
	"time"

	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/payroll"
	"cadebeck-hr/internal/shared/config"

	"github.com/shopspring/decimal"
)

type DocumentLine struct {
	Label  string
	Amount decimal.Decimal
}

type DocumentEmployee struct {
	Name        string
	StaffNumber string
	Department  string
	Designation string
	Branch      string
	Location    string
	Email       string
}

type DocumentLoan struct {
	Amount       decimal.Decimal
	Interest     decimal.Decimal
	Principal    decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Document is everything the renderer needs; it carries no database types.
type Document struct {
	Number      string
	GeneratedAt time.Time
	Company     config.CompanyConfig
	Employee    DocumentEmployee
	Period      string
	PayDate     time.Time

	Earnings   []DocumentLine
	Statutory  []DocumentLine
	Deductions []DocumentLine
	Loans      []DocumentLoan

	GrossPay        decimal.Decimal
	TaxableIncome   decimal.Decimal
	PersonalRelief  decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

func BuildDocument(
	number string,
	generatedAt time.Time,
	company config.CompanyConfig,
	p payroll.Payroll,
	repayments []loan.LoanRepayment,
) Document {
	doc := Document{
		Number:          number,
		GeneratedAt:     generatedAt,
		Company:         company,
		Period:          p.PayrollPeriod,
		PayDate:         p.PayDate,
		GrossPay:        p.GrossPay,
		TaxableIncome:   p.TaxableIncome,
		PersonalRelief:  p.PersonalRelief,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
	}

	if e := p.Employee; e != nil {
		doc.Employee = DocumentEmployee{
			Name:        e.FullName(),
			StaffNumber: e.StaffNumber,
			Department:  e.Department,
			Designation: e.Designation,
			Branch:      e.Branch,
			Location:    e.Location,
			Email:       e.ContactEmail(),
		}
	}

	doc.Earnings = append([]DocumentLine{{Label: "Basic Salary", Amount: p.BasicSalary}}, sortedLines(p.AllowancesDetail.Data)...)
	doc.Statutory = []DocumentLine{
		{Label: "PAYE", Amount: p.PAYE},
		{Label: "NHIF", Amount: p.NHIF},
		{Label: "NSSF", Amount: p.NSSF},
	}
	doc.Deductions = sortedLines(p.DeductionsDetail.Data)

	for _, r := range repayments {
		doc.Loans = append(doc.Loans, DocumentLoan{
			Amount:       r.Amount,
			Interest:     r.InterestPortion,
			Principal:    r.PrincipalPortion,
			BalanceAfter: r.BalanceAfter,
		})
	}
	return doc
}

func sortedLines(m map[string]decimal.Decimal) []DocumentLine {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]DocumentLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, DocumentLine{Label: k, Amount: m[k]})
	}
	return lines
}
