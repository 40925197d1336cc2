package paysliperrors

import (
	"net/http"

	"cadebeck-hr/internal/shared/apperror"
)

var (
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrMissingContact = apperror.New(
		apperror.CodeMissingContact,
		"employee has no email address",
		http.StatusUnprocessableEntity,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeRenderFailed,
		"payslip document could not be rendered",
		http.StatusInternalServerError,
	)
	ErrRenderTimeout = apperror.New(
		apperror.CodeRenderTimeout,
		"payslip rendering timed out",
		http.StatusGatewayTimeout,
	)
	ErrNumberExhausted = apperror.New(
		apperror.CodeConflict,
		"could not allocate a unique payslip number",
		http.StatusConflict,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"payslip_ids must not be empty",
		http.StatusBadRequest,
	)
)
