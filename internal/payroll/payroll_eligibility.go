package payroll

import (
	"github.com/shopspring/decimal"
)

// IsEligible reports whether item applies to period. Recurring items apply
// while active and within their date range. One-off items apply only to the
// period their effective date falls in, and only until a payroll claims them.
func IsEligible(item LineItem, period Period) bool {
	if item.Status != ItemStatusActive {
		return false
	}
	start, end := period.Start(), period.End()
	if item.EffectiveDate.After(end) {
		return false
	}
	if item.EndDate != nil && item.EndDate.Before(start) {
		return false
	}
	if item.IsRecurring {
		return true
	}
	return item.PayrollID == nil && !item.EffectiveDate.Before(start)
}

func FilterEligible(items []LineItem, period Period) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if IsEligible(item, period) {
			out = append(out, item)
		}
	}
	return out
}

// SumByCategory totals items per category. Each sum is rounded to 2 places.
func SumByCategory(items []LineItem) (map[string]decimal.Decimal, decimal.Decimal) {
	byCategory := make(map[string]decimal.Decimal, len(items))
	total := decimal.Zero
	for _, item := range items {
		byCategory[item.Category] = byCategory[item.Category].Add(item.Amount)
		total = total.Add(item.Amount)
	}
	for k, v := range byCategory {
		byCategory[k] = v.Round(2)
	}
	return byCategory, total.Round(2)
}
