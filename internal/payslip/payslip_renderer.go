package payslip

import (
	"bytes"
	"context"
	"fmt"
	"time"

	paysliperrors "cadebeck-hr/internal/payslip/errors"
	"cadebeck-hr/internal/shared/config"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payslip_renderer.go -destination=mock/payslip_renderer_mock.go -package=mock
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type PDFRenderer struct {
	paperSize  string
	fontFamily string
}

func NewPDFRenderer(cfg config.PayslipConfig) *PDFRenderer {
	r := &PDFRenderer{paperSize: cfg.PaperSize, fontFamily: cfg.FontFamily}
	if r.paperSize == "" {
		r.paperSize = "A4"
	}
	if r.fontFamily == "" {
		r.fontFamily = "Helvetica"
	}
	return r
}

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", r.paperSize, "")
	pdf.SetTitle("Payslip "+doc.Number, true)
	pdf.SetAuthor(doc.Company.Name, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageW - left - right

	pdf.SetFont(r.fontFamily, "B", 16)
	pdf.CellFormat(width, 8, tr(doc.Company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont(r.fontFamily, "", 9)
	for _, line := range []string{doc.Company.Address, joinNonEmpty(doc.Company.Email, doc.Company.Phone)} {
		if line != "" {
			pdf.CellFormat(width, 5, tr(line), "", 1, "C", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFont(r.fontFamily, "B", 13)
	pdf.CellFormat(width, 8, "PAYSLIP - "+doc.Period, "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(r.fontFamily, "", 10)
	half := width / 2
	pairs := [][2]string{
		{"Employee: " + doc.Employee.Name, "Payslip No: " + doc.Number},
		{"Staff No: " + doc.Employee.StaffNumber, "Pay Date: " + doc.PayDate.Format("02 Jan 2006")},
		{"Department: " + doc.Employee.Department, "Designation: " + doc.Employee.Designation},
		{"Branch: " + doc.Employee.Branch, "Location: " + doc.Employee.Location},
	}
	for _, p := range pairs {
		pdf.CellFormat(half, 6, tr(p[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 6, tr(p[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	section := func(title string, lines []DocumentLine) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont(r.fontFamily, "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(width, 7, title, "", 1, "L", true, 0, "")
		pdf.SetFont(r.fontFamily, "", 10)
		for _, l := range lines {
			pdf.CellFormat(width*0.7, 6, tr(l.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(width*0.3, 6, money(l.Amount), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}
	total := func(label string, amount decimal.Decimal) {
		pdf.SetFont(r.fontFamily, "B", 10)
		pdf.CellFormat(width*0.7, 7, label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(width*0.3, 7, money(amount), "T", 1, "R", false, 0, "")
		pdf.Ln(2)
	}

	section("EARNINGS", doc.Earnings)
	total("Gross Pay", doc.GrossPay)

	section("STATUTORY DEDUCTIONS", doc.Statutory)
	pdf.SetFont(r.fontFamily, "I", 8)
	pdf.CellFormat(width, 5, fmt.Sprintf("Taxable income %s, personal relief %s", money(doc.TaxableIncome), money(doc.PersonalRelief)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	section("OTHER DEDUCTIONS", doc.Deductions)
	total("Total Deductions", doc.TotalDeductions)

	if len(doc.Loans) > 0 {
		loanLines := make([]DocumentLine, 0, len(doc.Loans))
		for i, l := range doc.Loans {
			loanLines = append(loanLines, DocumentLine{
				Label:  fmt.Sprintf("Loan %d (interest %s, balance %s)", i+1, money(l.Interest), money(l.BalanceAfter)),
				Amount: l.Amount,
			})
		}
		section("LOAN REPAYMENTS", loanLines)
	}

	pdf.SetFont(r.fontFamily, "B", 12)
	pdf.SetFillColor(210, 230, 210)
	pdf.CellFormat(width*0.7, 9, "NET PAY", "", 0, "L", true, 0, "")
	pdf.CellFormat(width*0.3, 9, money(doc.NetPay), "", 1, "R", true, 0, "")

	pdf.Ln(6)
	pdf.SetFont(r.fontFamily, "", 8)
	pdf.CellFormat(width, 5, "Generated "+doc.GeneratedAt.Format("02 Jan 2006 15:04 MST"), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderWithTimeout bounds the wall clock of one render. gofpdf cannot be
// interrupted, so a timed out render finishes in the background and its
// result is dropped.
func renderWithTimeout(ctx context.Context, r Renderer, doc Document, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- result{err: fmt.Errorf("render panic: %v", rec)}
			}
		}()
		data, err := r.Render(doc)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, paysliperrors.ErrRenderTimeout.WithCause(ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, paysliperrors.ErrRenderFailed.WithCause(res.err)
		}
		return res.data, nil
	}
}

func money(d decimal.Decimal) string {
	return "KES " + d.StringFixed(2)
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " | " + b
	}
}
