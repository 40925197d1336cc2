package payslip_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cadebeck-hr/internal/payslip"
	paysliperrors "cadebeck-hr/internal/payslip/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayslipService struct {
	payslip.Service
	generateFn    func(ctx context.Context, actorID, payrollID string) (payslip.PayslipResponse, error)
	downloadFn    func(ctx context.Context, actorID, id string) (payslip.File, error)
	downloadOwnFn func(ctx context.Context, employeeID, id string) (payslip.File, error)
	listFn        func(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error)
	sendFn        func(ctx context.Context, actorID, id string) (payslip.EmailResult, error)
	queueFn       func(ctx context.Context, actorID string, ids []string) (payslip.BulkEmailQueued, error)
}

func (f *fakePayslipService) GeneratePayslip(ctx context.Context, actorID, payrollID string) (payslip.PayslipResponse, error) {
	return f.generateFn(ctx, actorID, payrollID)
}

func (f *fakePayslipService) Download(ctx context.Context, actorID, id string) (payslip.File, error) {
	return f.downloadFn(ctx, actorID, id)
}

func (f *fakePayslipService) DownloadOwn(ctx context.Context, employeeID, id string) (payslip.File, error) {
	return f.downloadOwnFn(ctx, employeeID, id)
}

func (f *fakePayslipService) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	return f.listFn(ctx, employeeID)
}

func (f *fakePayslipService) SendPayslipEmail(ctx context.Context, actorID, id string) (payslip.EmailResult, error) {
	return f.sendFn(ctx, actorID, id)
}

func (f *fakePayslipService) RequestBulkEmail(ctx context.Context, actorID string, ids []string) (payslip.BulkEmailQueued, error) {
	return f.queueFn(ctx, actorID, ids)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPayslipHandler_Generate(t *testing.T) {
	payrollID := uuid.New().String()
	svc := &fakePayslipService{
		generateFn: func(ctx context.Context, actorID, pid string) (payslip.PayslipResponse, error) {
			assert.Equal(t, payrollID, pid)
			return payslip.PayslipResponse{PayrollID: pid, PayslipNumber: "PSL-EMP001-032026-ABC123"}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(`{"payroll_id":"`+payrollID+`"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayslipHandler_Generate_InvalidBody(t *testing.T) {
	h := payslip.NewHandler(&fakePayslipService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(`{"payroll_id":"nope"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayslipHandler_Download(t *testing.T) {
	id := uuid.New().String()
	svc := &fakePayslipService{
		downloadFn: func(ctx context.Context, actorID, pid string) (payslip.File, error) {
			return payslip.File{Name: "payslip_EMP001_032026.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+id+"/download", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip_EMP001_032026.pdf")
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestPayslipHandler_DownloadOwn(t *testing.T) {
	employeeID := uuid.New().String()
	id := uuid.New().String()
	svc := &fakePayslipService{
		downloadOwnFn: func(ctx context.Context, eid, pid string) (payslip.File, error) {
			assert.Equal(t, employeeID, eid)
			return payslip.File{}, paysliperrors.ErrPayslipNotFound
		},
	}

	h := payslip.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/mine/"+id+"/download", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("employee_id", employeeID)
	h.DownloadOwn(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	wNoEmployee := httptest.NewRecorder()
	cNoEmployee, _ := gin.CreateTestContext(wNoEmployee)
	cNoEmployee.Request = httptest.NewRequest(http.MethodGet, "/payslips/mine/"+id+"/download", nil)
	cNoEmployee.Set("user_id", uuid.New().String())
	h.DownloadOwn(cNoEmployee)
	assert.Equal(t, http.StatusForbidden, wNoEmployee.Code)
}

func TestPayslipHandler_ListOwn(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakePayslipService{
		listFn: func(ctx context.Context, eid string) ([]payslip.PayslipResponse, error) {
			assert.Equal(t, employeeID, eid)
			return []payslip.PayslipResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payslips/mine?page=1&page_size=2", nil)
	c.Set("employee_id", employeeID)

	h.ListOwn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var items []payslip.PayslipResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
}

func TestPayslipHandler_SendEmail_RecordedFailure(t *testing.T) {
	id := uuid.New().String()
	svc := &fakePayslipService{
		sendFn: func(ctx context.Context, actorID, pid string) (payslip.EmailResult, error) {
			return payslip.EmailResult{PayslipID: pid, Status: payslip.EmailStatusFailed, Code: "MISSING_CONTACT"}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/"+id+"/send", nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.SendEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var res payslip.EmailResult
	assert.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, payslip.EmailStatusFailed, res.Status)
	assert.Equal(t, "MISSING_CONTACT", res.Code)
}

func TestPayslipHandler_QueueBulkEmail(t *testing.T) {
	ids := []string{uuid.New().String()}
	svc := &fakePayslipService{
		queueFn: func(ctx context.Context, actorID string, got []string) (payslip.BulkEmailQueued, error) {
			assert.Equal(t, ids, got)
			return payslip.BulkEmailQueued{Queued: 1, PayslipIDs: got}, nil
		},
	}

	h := payslip.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/bulk-send/queue", strings.NewReader(`{"payslip_ids":["`+ids[0]+`"]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.QueueBulkEmail(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
