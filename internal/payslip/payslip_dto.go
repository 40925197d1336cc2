package payslip

type GeneratePayslipRequest struct {
	PayrollID string `json:"payroll_id" binding:"required,uuid"`
}

type BulkEmailRequest struct {
	PayslipIDs []string `json:"payslip_ids" binding:"required,min=1,dive,uuid"`
}

type PayslipResponse struct {
	ID            string  `json:"id"`
	PayrollID     string  `json:"payroll_id"`
	EmployeeID    string  `json:"employee_id"`
	PayslipNumber string  `json:"payslip_number"`
	Period        string  `json:"period"`
	FileName      string  `json:"file_name"`
	GeneratedAt   string  `json:"generated_at"`
	EmailStatus   string  `json:"email_status"`
	EmailError    *string `json:"email_error,omitempty"`
	EmailedAt     *string `json:"emailed_at,omitempty"`
	ViewedAt      *string `json:"viewed_at,omitempty"`
	DownloadedAt  *string `json:"downloaded_at,omitempty"`
	DownloadCount int     `json:"download_count"`
}

// File is a payslip PDF ready to be streamed.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// EmailResult is the per-payslip delivery outcome. A failed delivery is a
// result, not an error.
type EmailResult struct {
	PayslipID  string `json:"payslip_id"`
	Status     string `json:"status"`
	Attached   bool   `json:"attached"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

type ItemError struct {
	PayslipID string `json:"payslip_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type BulkEmailResult struct {
	Requested   int           `json:"requested"`
	SentCount   int           `json:"sent_count"`
	FailedCount int           `json:"failed_count"`
	Sent        []EmailResult `json:"sent"`
	Errors      []ItemError   `json:"errors"`
}

type BulkEmailQueued struct {
	Queued     int      `json:"queued"`
	PayslipIDs []string `json:"payslip_ids"`
}
