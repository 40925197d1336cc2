package tax

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func round(v decimal.Decimal) decimal.Decimal {
	return v.Round(moneyPlaces)
}

type BracketCharge struct {
	Min    decimal.Decimal  `json:"min"`
	Max    *decimal.Decimal `json:"max,omitempty"`
	Rate   decimal.Decimal  `json:"rate"`
	Amount decimal.Decimal  `json:"amount"`
	Tax    decimal.Decimal  `json:"tax"`
}

type PAYEResult struct {
	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	PersonalRelief  decimal.Decimal `json:"personal_relief"`
	InsuranceRelief decimal.Decimal `json:"insurance_relief"`
	TotalRelief     decimal.Decimal `json:"total_relief"`
	AdjustedIncome  decimal.Decimal `json:"adjusted_income"`
	PAYE            decimal.Decimal `json:"paye"`
	Brackets        []BracketCharge `json:"brackets"`
}

type NSSFResult struct {
	Tier1 decimal.Decimal `json:"tier1"`
	Tier2 decimal.Decimal `json:"tier2"`
	Total decimal.Decimal `json:"total"`
}

type Breakdown struct {
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	TotalAllowances     decimal.Decimal `json:"total_allowances"`
	GrossPay            decimal.Decimal `json:"gross_pay"`
	TaxableIncome       decimal.Decimal `json:"taxable_income"`
	PAYE                PAYEResult      `json:"paye"`
	NHIF                decimal.Decimal `json:"nhif"`
	NSSF                NSSFResult      `json:"nssf"`
	StatutoryDeductions decimal.Decimal `json:"statutory_deductions"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`
	Version             string          `json:"version"`
}

// Calculator turns compensation into statutory liabilities. Implementations
// are pure; inputs are validated by callers.
type Calculator interface {
	CalculatePAYE(taxableIncome decimal.Decimal, dependents int) PAYEResult
	CalculateNHIF(grossPay decimal.Decimal) decimal.Decimal
	CalculateNSSF(basicSalary decimal.Decimal) NSSFResult
	CalculateAll(basic, allowances, deductions decimal.Decimal, dependents int) Breakdown
}

type calculator struct {
	tables Tables
}

func NewCalculator(tables Tables) Calculator {
	return &calculator{tables: tables}
}

// CalculatePAYE applies reliefs first, then the marginal brackets.
// dependents is accepted for table formats that grant per-dependent relief;
// the current tables do not.
func (c *calculator) CalculatePAYE(taxableIncome decimal.Decimal, dependents int) PAYEResult {
	totalRelief := c.tables.PersonalRelief.Add(c.tables.InsuranceRelief)
	adjusted := taxableIncome.Sub(totalRelief)

	result := PAYEResult{
		TaxableIncome:   round(taxableIncome),
		PersonalRelief:  round(c.tables.PersonalRelief),
		InsuranceRelief: round(c.tables.InsuranceRelief),
		TotalRelief:     round(totalRelief),
		AdjustedIncome:  round(decimal.Max(adjusted, decimal.Zero)),
		PAYE:            decimal.Zero,
		Brackets:        []BracketCharge{},
	}
	if !adjusted.IsPositive() {
		return result
	}

	total := decimal.Zero
	for _, b := range c.tables.PAYEBrackets {
		// a bracket is entered only when income strictly exceeds its floor
		if !adjusted.GreaterThan(b.Min) {
			break
		}

		upper := adjusted
		if b.Max != nil && b.Max.LessThan(adjusted) {
			upper = *b.Max
		}
		amount := upper.Sub(b.Min)
		tax := round(b.Fixed.Add(amount.Mul(b.Rate)))

		result.Brackets = append(result.Brackets, BracketCharge{
			Min:    b.Min,
			Max:    b.Max,
			Rate:   b.Rate,
			Amount: round(amount),
			Tax:    tax,
		})
		total = total.Add(tax)

		if b.Max == nil || !adjusted.GreaterThan(*b.Max) {
			break
		}
	}

	result.PAYE = round(total)
	return result
}

func (c *calculator) CalculateNHIF(grossPay decimal.Decimal) decimal.Decimal {
	bands := c.tables.NHIFBands
	if grossPay.LessThan(bands[0].Min) {
		return round(bands[0].Amount)
	}
	for _, b := range bands {
		if grossPay.GreaterThanOrEqual(b.Min) && (b.Max == nil || grossPay.LessThan(*b.Max)) {
			return round(b.Amount)
		}
	}
	return round(bands[len(bands)-1].Amount)
}

func (c *calculator) CalculateNSSF(basicSalary decimal.Decimal) NSSFResult {
	rule := c.tables.NSSF
	salary := decimal.Max(basicSalary, decimal.Zero)

	tier1 := round(decimal.Min(salary, rule.LowerLimit).Mul(rule.Rate))
	tier2Base := decimal.Max(decimal.Min(salary, rule.UpperLimit).Sub(rule.LowerLimit), decimal.Zero)
	tier2 := round(tier2Base.Mul(rule.Rate))

	return NSSFResult{
		Tier1: tier1,
		Tier2: tier2,
		Total: tier1.Add(tier2),
	}
}

// CalculateAll composes the full breakdown. Every field is rounded before it
// feeds the next step, so NetPay == GrossPay - TotalDeductions exactly.
func (c *calculator) CalculateAll(basic, allowances, deductions decimal.Decimal, dependents int) Breakdown {
	basic = round(basic)
	allowances = round(allowances)
	deductions = round(deductions)

	gross := basic.Add(allowances)
	paye := c.CalculatePAYE(gross, dependents)
	nhif := c.CalculateNHIF(gross)
	nssf := c.CalculateNSSF(basic)

	statutory := paye.PAYE.Add(nhif).Add(nssf.Total)
	totalDeductions := statutory.Add(deductions)

	return Breakdown{
		BasicSalary:         basic,
		TotalAllowances:     allowances,
		GrossPay:            gross,
		TaxableIncome:       gross,
		PAYE:                paye,
		NHIF:                nhif,
		NSSF:                nssf,
		StatutoryDeductions: statutory,
		OtherDeductions:     deductions,
		TotalDeductions:     totalDeductions,
		NetPay:              gross.Sub(totalDeductions),
		Version:             c.tables.Version,
	}
}
