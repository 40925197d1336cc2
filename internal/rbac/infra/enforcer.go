package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer builds a role/resource/action enforcer from a model file and a
// CSV policy file.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
