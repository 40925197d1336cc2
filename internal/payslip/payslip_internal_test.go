package payslip

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/payroll"
	paysliperrors "cadebeck-hr/internal/payslip/errors"
	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/jsonb"
	storageMock "cadebeck-hr/internal/shared/storage/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type numberRepo struct {
	Repository
	taken map[string]bool
	calls int
}

func (r *numberRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	r.calls++
	return r.taken[number] || r.taken["*"], nil
}

func TestUniqueNumber(t *testing.T) {
	period, err := payroll.ParsePeriod("03/2026")
	assert.NoError(t, err)

	repo := &numberRepo{taken: map[string]bool{}}
	number, err := uniqueNumber(context.Background(), repo, "EMP001", period)
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PSL-EMP001-032026-[A-Z0-9]{6}$`), number)
	assert.Equal(t, 1, repo.calls)

	exhausted := &numberRepo{taken: map[string]bool{"*": true}}
	_, err = uniqueNumber(context.Background(), exhausted, "EMP001", period)
	assert.ErrorIs(t, err, paysliperrors.ErrNumberExhausted)
	assert.Equal(t, maxNumberAttempts, exhausted.calls)
}

func TestRandomSuffix_Alphabet(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s, err := randomSuffix()
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), s)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 45)
}

func testDocument() Document {
	p := payroll.Payroll{
		PayrollPeriod: "03/2026",
		PayDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		BasicSalary:   decimal.RequireFromString("50000"),
		AllowancesDetail: jsonb.Of(map[string]decimal.Decimal{
			"transport": decimal.RequireFromString("2000"),
			"housing":   decimal.RequireFromString("5000"),
		}),
		DeductionsDetail: jsonb.Of(map[string]decimal.Decimal{
			"sacco": decimal.RequireFromString("1000"),
		}),
		GrossPay:        decimal.RequireFromString("57000"),
		PAYE:            decimal.RequireFromString("11163.35"),
		NHIF:            decimal.RequireFromString("1200"),
		NSSF:            decimal.RequireFromString("2160"),
		TotalDeductions: decimal.RequireFromString("15523.35"),
		NetPay:          decimal.RequireFromString("41476.65"),
	}
	repayments := []loan.LoanRepayment{{
		Amount:           decimal.RequireFromString("1500"),
		InterestPortion:  decimal.RequireFromString("50"),
		PrincipalPortion: decimal.RequireFromString("1450"),
		BalanceAfter:     decimal.RequireFromString("4500"),
	}}
	company := config.CompanyConfig{Name: "Cadebeck", Address: "Nairobi", Email: "hr@cadebeck.test"}
	return BuildDocument("PSL-EMP001-032026-ABC123", time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC), company, p, repayments)
}

func TestBuildDocument_SortsLines(t *testing.T) {
	doc := testDocument()

	labels := make([]string, 0, len(doc.Earnings))
	for _, l := range doc.Earnings {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"Basic Salary", "housing", "transport"}, labels)
	assert.Len(t, doc.Statutory, 3)
	assert.Equal(t, "sacco", doc.Deductions[0].Label)
	assert.Len(t, doc.Loans, 1)
	assert.Empty(t, doc.Employee.Name)
}

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer(config.PayslipConfig{})

	data, err := r.Render(testDocument())

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

type rendererFunc func(Document) ([]byte, error)

func (f rendererFunc) Render(doc Document) ([]byte, error) {
	return f(doc)
}

func TestRenderWithTimeout(t *testing.T) {
	ctx := context.Background()

	data, err := renderWithTimeout(ctx, rendererFunc(func(Document) ([]byte, error) {
		return []byte("ok"), nil
	}), Document{}, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)

	_, err = renderWithTimeout(ctx, rendererFunc(func(Document) ([]byte, error) {
		return nil, errors.New("boom")
	}), Document{}, time.Second)
	assert.ErrorIs(t, err, paysliperrors.ErrRenderFailed)

	_, err = renderWithTimeout(ctx, rendererFunc(func(Document) ([]byte, error) {
		panic("bad font")
	}), Document{}, time.Second)
	assert.ErrorIs(t, err, paysliperrors.ErrRenderFailed)

	_, err = renderWithTimeout(ctx, rendererFunc(func(Document) ([]byte, error) {
		time.Sleep(100 * time.Millisecond)
		return nil, nil
	}), Document{}, 10*time.Millisecond)
	assert.ErrorIs(t, err, paysliperrors.ErrRenderTimeout)
}

func TestBuildEmail(t *testing.T) {
	doc := testDocument()
	doc.Employee.Name = "Alice <Wanjiru>"

	msg, err := buildEmail("alice@example.com", doc, "payslip.pdf", []byte("%PDF"))
	assert.NoError(t, err)
	assert.Equal(t, "Payslip for 03/2026", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Alice &lt;Wanjiru&gt;")
	assert.Contains(t, msg.HTMLBody, "attached to this email")
	assert.Len(t, msg.Attachments, 1)

	msg, err = buildEmail("alice@example.com", doc, "payslip.pdf", nil)
	assert.NoError(t, err)
	assert.Empty(t, msg.Attachments)
	assert.Contains(t, msg.HTMLBody, "could not be attached")
}

func TestCleanup_ScheduleAndRunDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb, mock := redismock.NewClientMock()
	files := storageMock.NewMockFileStorage(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	c := NewCleanup(rdb, files)
	c.now = func() time.Time { return now }

	mock.ExpectZAdd(cleanupKey, redis.Z{
		Score:  float64(now.Add(24 * time.Hour).Unix()),
		Member: "payslips/temp/a.pdf",
	}).SetVal(1)
	assert.NoError(t, c.Schedule(ctx, "payslips/temp/a.pdf", 24*time.Hour))

	mock.ExpectZRangeByScore(cleanupKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   "1774958400",
		Count: cleanupBatchSize,
	}).SetVal([]string{"payslips/temp/old.pdf", "payslips/temp/locked.pdf"})
	files.EXPECT().Delete(ctx, "payslips/temp/old.pdf").Return(nil)
	files.EXPECT().Delete(ctx, "payslips/temp/locked.pdf").Return(errors.New("permission denied"))
	mock.ExpectZRem(cleanupKey, "payslips/temp/old.pdf").SetVal(1)

	n, err := c.RunDue(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCleanup_RunDue_RedisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb, mock := redismock.NewClientMock()
	c := NewCleanup(rdb, storageMock.NewMockFileStorage(ctrl))
	c.now = func() time.Time { return time.Unix(100, 0) }

	mock.ExpectZRangeByScore(cleanupKey, &redis.ZRangeBy{Min: "-inf", Max: "100", Count: cleanupBatchSize}).
		SetErr(errors.New("redis down"))

	_, err := c.RunDue(context.Background())
	assert.Error(t, err)
}
