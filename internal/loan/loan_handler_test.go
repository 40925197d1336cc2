package loan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cadebeck-hr/internal/loan"
	loanerrors "cadebeck-hr/internal/loan/errors"

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
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeLoanService struct {
	createFn         func(ctx context.Context, actorID string, req loan.CreateLoanRequest) (loan.LoanResponse, error)
	getByIDFn        func(ctx context.Context, id string) (loan.LoanResponse, error)
	listByEmployeeFn func(ctx context.Context, employeeID string) ([]loan.LoanResponse, error)
}

func (f *fakeLoanService) Create(ctx context.Context, actorID string, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	return f.createFn(ctx, actorID, req)
}

func (f *fakeLoanService) GetByID(ctx context.Context, id string) (loan.LoanResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeLoanService) ListByEmployee(ctx context.Context, employeeID string) ([]loan.LoanResponse, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLoanHandler_Create(t *testing.T) {
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeLoanService{
		createFn: func(ctx context.Context, aid string, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.True(t, req.Principal.Equal(d("5000")))
			return loan.LoanResponse{ID: uuid.New().String(), LoanNumber: "LN-000001"}, nil
		},
	}

	h := loan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","principal":"5000","interest_rate":"10","installments":5,"start_date":"2026-01-01"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_id", actorID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestLoanHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeLoanService{
		getByIDFn: func(ctx context.Context, id string) (loan.LoanResponse, error) {
			return loan.LoanResponse{}, loanerrors.ErrLoanNotFound
		},
	}

	h := loan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/loans/x", nil)
	c.Params = []gin.Param{{Key: "id", Value: "x"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestLoanHandler_ListByEmployee(t *testing.T) {
	employeeID := uuid.New().String()
	svc := &fakeLoanService{
		listByEmployeeFn: func(ctx context.Context, eid string) ([]loan.LoanResponse, error) {
			assert.Equal(t, employeeID, eid)
			return []loan.LoanResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}

	h := loan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/loans?employee_id="+employeeID+"&page=2&page_size=2", nil)

	h.ListByEmployee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var items []loan.LoanResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)
}

func TestLoanHandler_ListByEmployee_MissingQuery(t *testing.T) {
	h := loan.NewHandler(&fakeLoanService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/loans", nil)

	h.ListByEmployee(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
