package payslip

import "time"

func mapToResponse(ps Payslip) PayslipResponse {
	return PayslipResponse{
		ID:            ps.ID.String(),
		PayrollID:     ps.PayrollID.String(),
		EmployeeID:    ps.EmployeeID.String(),
		PayslipNumber: ps.PayslipNumber,
		Period:        ps.Period,
		FileName:      ps.FileName,
		GeneratedAt:   ps.GeneratedAt.Format(time.RFC3339),
		EmailStatus:   ps.EmailStatus,
		EmailError:    ps.EmailError,
		EmailedAt:     timeString(ps.EmailedAt),
		ViewedAt:      timeString(ps.ViewedAt),
		DownloadedAt:  timeString(ps.DownloadedAt),
		DownloadCount: ps.DownloadCount,
	}
}

func mapToResponses(items []Payslip) []PayslipResponse {
	out := make([]PayslipResponse, 0, len(items))
	for _, ps := range items {
		out = append(out, mapToResponse(ps))
	}
	return out
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
