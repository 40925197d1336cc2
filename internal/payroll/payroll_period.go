package payroll

import (
	"fmt"
	"time"

	payrollerrors "cadebeck-hr/internal/payroll/errors"
)

const periodLayout = "01/2006"

// Period is a calendar month, written MM/YYYY.
type Period struct {
	year  int
	month time.Month
}

func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, payrollerrors.ErrInvalidPeriodFormat
	}
	return Period{year: t.Year(), month: t.Month()}, nil
}

func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

func (p Period) Start() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month at midnight.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", int(p.month), p.year)
}

// Compact renders MMYYYY, used in document numbers.
func (p Period) Compact() string {
	return fmt.Sprintf("%02d%04d", int(p.month), p.year)
}

func (p Period) IsZero() bool {
	return p.year == 0
}
