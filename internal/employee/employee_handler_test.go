package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cadebeck-hr/internal/employee"
	employeeerrors "cadebeck-hr/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	employee.Service
	getAllFn  func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error)
	getByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "jane", filter.Query)
			assert.Equal(t, "staff_number", filter.SortBy)
			assert.Equal(t, "asc", filter.SortDir)
			return []employee.EmployeeResponse{
				{StaffNumber: "EMP-001"}, {StaffNumber: "EMP-002"}, {StaffNumber: "EMP-003"},
			}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=jane&page=2&page_size=2", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool                        `json:"ok"`
		Data []employee.EmployeeResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "EMP-003", body.Data[0].StaffNumber)
	assert.Equal(t, int64(3), body.Meta.Total)
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			assert.Equal(t, "abc", id)
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
	c.Params = []gin.Param{{Key: "id", Value: "abc"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
