package payslip

import (
	"bytes"
	"embed"
	"html/template"

	"cadebeck-hr/internal/shared/mailer"
)

//go:embed templates/payslip_email.html
var templateFS embed.FS

var emailTemplate = template.Must(template.ParseFS(templateFS, "templates/payslip_email.html"))

type emailData struct {
	EmployeeName    string
	Period          string
	Number          string
	GrossPay        string
	TotalDeductions string
	NetPay          string
	CompanyName     string
	HasAttachment   bool
}

// buildEmail attaches pdf when it is non-empty.
func buildEmail(to string, doc Document, fileName string, pdf []byte) (mailer.Message, error) {
	var body bytes.Buffer
	err := emailTemplate.Execute(&body, emailData{
		EmployeeName:    doc.Employee.Name,
		Period:          doc.Period,
		Number:          doc.Number,
		GrossPay:        money(doc.GrossPay),
		TotalDeductions: money(doc.TotalDeductions),
		NetPay:          money(doc.NetPay),
		CompanyName:     doc.Company.Name,
		HasAttachment:   len(pdf) > 0,
	})
	if err != nil {
		return mailer.Message{}, err
	}

	msg := mailer.Message{
		To:       to,
		Subject:  "Payslip for " + doc.Period,
		HTMLBody: body.String(),
	}
	if len(pdf) > 0 {
		msg.Attachments = []mailer.Attachment{{
			FileName:    fileName,
			ContentType: "application/pdf",
			Data:        pdf,
		}}
	}
	return msg, nil
}
