package rbac_test

import (
	"testing"

	"cadebeck-hr/internal/rbac"
	"cadebeck-hr/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("infra/model.conf", "infra/policy.csv")
	require.NoError(t, err)
	return rbac.NewService(enforcer, zap.NewNop())
}

func TestService_Enforce(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name string
		req  rbac.EnforceRequest
		want bool
	}{
		{"officer processes payroll", rbac.EnforceRequest{Role: "payroll_officer", Resource: "payroll", Action: "process"}, true},
		{"officer cannot pay", rbac.EnforceRequest{Role: "payroll_officer", Resource: "payroll", Action: "pay"}, false},
		{"finance pays", rbac.EnforceRequest{Role: "finance_manager", Resource: "payroll", Action: "pay"}, true},
		{"hr admin inherits both", rbac.EnforceRequest{Role: "hr_admin", Resource: "payroll", Action: "approve"}, true},
		{"super admin wildcard", rbac.EnforceRequest{Role: "super_admin", Resource: "payslip", Action: "send"}, true},
		{"empty role", rbac.EnforceRequest{Resource: "payroll", Action: "read"}, false},
		{"unknown role", rbac.EnforceRequest{Role: "intern", Resource: "payroll", Action: "read"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.req)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestService_Reload(t *testing.T) {
	assert.NoError(t, newService(t).Reload())
}
