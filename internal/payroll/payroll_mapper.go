package payroll

import (
	"time"

	"github.com/google/uuid"
)

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                   p.ID.String(),
		EmployeeID:           p.EmployeeID.String(),
		Period:               p.PayrollPeriod,
		PayDate:              p.PayDate.Format(dateLayout),
		BasicSalary:          p.BasicSalary,
		Allowances:           p.AllowancesDetail.Data,
		TotalAllowances:      p.TotalAllowances,
		GrossPay:             p.GrossPay,
		TaxableIncome:        p.TaxableIncome,
		PersonalRelief:       p.PersonalRelief,
		InsuranceRelief:      p.InsuranceRelief,
		PAYE:                 p.PAYE,
		NHIF:                 p.NHIF,
		NSSFTier1:            p.NSSFTier1,
		NSSFTier2:            p.NSSFTier2,
		NSSF:                 p.NSSF,
		Deductions:           p.DeductionsDetail.Data,
		TotalOtherDeductions: p.TotalOtherDeductions,
		TotalDeductions:      p.TotalDeductions,
		NetPay:               p.NetPay,
		TaxBreakdown:         p.TaxBreakdown.Data,
		Status:               p.Status,
		ProcessedBy:          uuidString(p.ProcessedBy),
		ApprovedBy:           uuidString(p.ApprovedBy),
		ApprovedAt:           timeString(p.ApprovedAt),
		PaidBy:               uuidString(p.PaidBy),
		PaidAt:               timeString(p.PaidAt),
	}
	if p.Employee != nil {
		resp.StaffNumber = p.Employee.StaffNumber
		resp.EmployeeName = p.Employee.FullName()
	}
	return resp
}

func mapItem(kind LineItemKind, item LineItem) LineItemResponse {
	resp := LineItemResponse{
		ID:            item.ID.String(),
		Kind:          kind,
		EmployeeID:    item.EmployeeID.String(),
		PayrollID:     uuidString(item.PayrollID),
		Category:      item.Category,
		Description:   item.Description,
		Amount:        item.Amount,
		IsRecurring:   item.IsRecurring,
		EffectiveDate: item.EffectiveDate.Format(dateLayout),
		Status:        item.Status,
	}
	if item.EndDate != nil {
		v := item.EndDate.Format(dateLayout)
		resp.EndDate = &v
	}
	return resp
}

func mapItems(kind LineItemKind, items []LineItem) []LineItemResponse {
	resp := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, mapItem(kind, item))
	}
	return resp
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
