package employee

import (
	"context"
	"sort"
	"strings"

	employeeerrors "cadebeck-hr/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListFilter narrows the payroll-eligible employee directory.
type ListFilter struct {
	Query   string
	SortBy  string
	SortDir string
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees", zap.String("q", filter.Query))

	employees, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.Error("find active employees failed", zap.Error(err))
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		item := mapToResponse(e)
		if q != "" &&
			!strings.Contains(strings.ToLower(item.FullName), q) &&
			!strings.Contains(strings.ToLower(item.StaffNumber), q) &&
			!strings.Contains(strings.ToLower(item.Email), q) {
			continue
		}
		resp = append(resp, item)
	}

	sortResponses(resp, filter.SortBy, filter.SortDir)
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

// sortResponses defaults to staff number ascending.
func sortResponses(items []EmployeeResponse, sortBy, sortDir string) {
	desc := strings.EqualFold(strings.TrimSpace(sortDir), "desc")
	sortBy = strings.ToLower(strings.TrimSpace(sortBy))

	sort.SliceStable(items, func(i, j int) bool {
		var a, b string
		switch sortBy {
		case "name":
			a, b = strings.ToLower(items[i].FullName), strings.ToLower(items[j].FullName)
		case "department":
			a, b = strings.ToLower(items[i].Department), strings.ToLower(items[j].Department)
		default:
			a, b = items[i].StaffNumber, items[j].StaffNumber
		}
		if desc {
			return a > b
		}
		return a < b
	})
}
