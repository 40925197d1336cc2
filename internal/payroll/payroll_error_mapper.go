package payroll

import (
	"errors"
	"strings"

	payrollerrors "cadebeck-hr/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueEmployeePeriod = "uq_payroll_employee_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueEmployeePeriod {
		return payrollerrors.ErrDuplicateProcessing
	}

	// pgx wrapped by database/sql loses the typed error in some paths
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeePeriod) {
		return payrollerrors.ErrDuplicateProcessing
	}

	return err
}
