package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one marginal PAYE band. A nil Max marks the open top band.
type Bracket struct {
	Min   decimal.Decimal
	Max   *decimal.Decimal
	Rate  decimal.Decimal
	Fixed decimal.Decimal
}

// Band maps gross pay in [Min, Max) to a fixed NHIF contribution.
type Band struct {
	Min    decimal.Decimal
	Max    *decimal.Decimal
	Amount decimal.Decimal
}

type NSSFRule struct {
	Rate       decimal.Decimal
	LowerLimit decimal.Decimal
	UpperLimit decimal.Decimal
}

type Tables struct {
	Version         string
	PersonalRelief  decimal.Decimal
	InsuranceRelief decimal.Decimal
	PAYEBrackets    []Bracket
	NHIFBands       []Band
	NSSF            NSSFRule
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

// DefaultTables returns the monthly statutory tables in force when no
// external table file is configured.
func DefaultTables() Tables {
	return Tables{
		Version:         "default-monthly",
		PersonalRelief:  d("2400"),
		InsuranceRelief: decimal.Zero,
		PAYEBrackets: []Bracket{
			{Min: d("0"), Max: dp("24000"), Rate: d("0.10")},
			{Min: d("24000"), Max: dp("32333"), Rate: d("0.25")},
			{Min: d("32333"), Max: dp("500000"), Rate: d("0.30")},
			{Min: d("500000"), Max: dp("800000"), Rate: d("0.325")},
			{Min: d("800000"), Max: dp("1200000"), Rate: d("0.35")},
			{Min: d("1200000"), Max: dp("2000000"), Rate: d("0.36")},
			{Min: d("2000000"), Rate: d("0.37")},
		},
		NHIFBands: []Band{
			{Min: d("0"), Max: dp("6000"), Amount: d("150")},
			{Min: d("6000"), Max: dp("8000"), Amount: d("300")},
			{Min: d("8000"), Max: dp("12000"), Amount: d("400")},
			{Min: d("12000"), Max: dp("15000"), Amount: d("500")},
			{Min: d("15000"), Max: dp("20000"), Amount: d("600")},
			{Min: d("20000"), Max: dp("25000"), Amount: d("750")},
			{Min: d("25000"), Max: dp("30000"), Amount: d("850")},
			{Min: d("30000"), Max: dp("35000"), Amount: d("900")},
			{Min: d("35000"), Max: dp("40000"), Amount: d("950")},
			{Min: d("40000"), Max: dp("45000"), Amount: d("1000")},
			{Min: d("45000"), Max: dp("50000"), Amount: d("1100")},
			{Min: d("50000"), Max: dp("60000"), Amount: d("1200")},
			{Min: d("60000"), Max: dp("70000"), Amount: d("1300")},
			{Min: d("70000"), Max: dp("80000"), Amount: d("1400")},
			{Min: d("80000"), Max: dp("90000"), Amount: d("1500")},
			{Min: d("90000"), Max: dp("100000"), Amount: d("1600")},
			{Min: d("100000"), Amount: d("1700")},
		},
		NSSF: NSSFRule{
			Rate:       d("0.06"),
			LowerLimit: d("7000"),
			UpperLimit: d("36000"),
		},
	}
}

var (
	ErrNoBrackets = errors.New("tax: at least one PAYE bracket is required")
	ErrNoBands    = errors.New("tax: at least one NHIF band is required")
)

// Validate checks that brackets and bands are ordered, contiguous and
// end with a single open-ended entry.
func (t Tables) Validate() error {
	if len(t.PAYEBrackets) == 0 {
		return ErrNoBrackets
	}
	if len(t.NHIFBands) == 0 {
		return ErrNoBands
	}
	if t.PersonalRelief.IsNegative() || t.InsuranceRelief.IsNegative() {
		return errors.New("tax: reliefs cannot be negative")
	}

	for i, b := range t.PAYEBrackets {
		if b.Rate.IsNegative() || b.Fixed.IsNegative() {
			return fmt.Errorf("tax: PAYE bracket %d has a negative rate or fixed amount", i)
		}
		last := i == len(t.PAYEBrackets)-1
		if last != (b.Max == nil) {
			return fmt.Errorf("tax: only the last PAYE bracket may be open-ended (bracket %d)", i)
		}
		if b.Max != nil && !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("tax: PAYE bracket %d has max <= min", i)
		}
		if i > 0 && !b.Min.Equal(*t.PAYEBrackets[i-1].Max) {
			return fmt.Errorf("tax: PAYE bracket %d does not start where bracket %d ends", i, i-1)
		}
	}

	if !t.NHIFBands[0].Min.IsZero() {
		return errors.New("tax: NHIF bands must start at zero")
	}
	for i, b := range t.NHIFBands {
		if b.Amount.IsNegative() {
			return fmt.Errorf("tax: NHIF band %d has a negative amount", i)
		}
		last := i == len(t.NHIFBands)-1
		if last != (b.Max == nil) {
			return fmt.Errorf("tax: only the last NHIF band may be open-ended (band %d)", i)
		}
		if b.Max != nil && !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("tax: NHIF band %d has max <= min", i)
		}
		if i > 0 && !b.Min.Equal(*t.NHIFBands[i-1].Max) {
			return fmt.Errorf("tax: NHIF band %d leaves a gap or overlap", i)
		}
	}

	if t.NSSF.Rate.IsNegative() || t.NSSF.UpperLimit.LessThan(t.NSSF.LowerLimit) {
		return errors.New("tax: invalid NSSF rule")
	}
	return nil
}
