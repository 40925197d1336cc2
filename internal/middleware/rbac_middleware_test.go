package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cadebeck-hr/internal/middleware"
	"cadebeck-hr/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     rbac.EnforceRequest
}

func (f *fakeRBAC) Enforce(req rbac.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func rbacRouter(svc middleware.RBACService, userID, role string) *gin.Engine {
	r := gin.New()
	r.POST("/payrolls/process",
		func(c *gin.Context) {
			if userID != "" {
				c.Set(middleware.ContextUserID, userID)
			}
			c.Set(middleware.ContextRole, role)
		},
		middleware.RBACAuthorize(svc, "payroll", "process"),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return r
}

func TestRBACAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeRBAC
		userID     string
		wantStatus int
	}{
		{name: "allowed", svc: &fakeRBAC{allowed: true}, userID: "u1", wantStatus: http.StatusNoContent},
		{name: "denied", svc: &fakeRBAC{}, userID: "u1", wantStatus: http.StatusForbidden},
		{name: "enforcer error", svc: &fakeRBAC{err: errors.New("policy load failed")}, userID: "u1", wantStatus: http.StatusInternalServerError},
		{name: "no user", svc: &fakeRBAC{allowed: true}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rbacRouter(tt.svc, tt.userID, "payroll_officer").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payrolls/process", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.userID != "" {
				assert.Equal(t, rbac.EnforceRequest{Role: "payroll_officer", Resource: "payroll", Action: "process"}, tt.svc.got)
			}
		})
	}
}
