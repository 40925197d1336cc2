package loanerrors

import (
	"net/http"

	"cadebeck-hr/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidPrincipal = apperror.New(
		apperror.CodeInvalidInput,
		"principal must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidInterestRate = apperror.New(
		apperror.CodeInvalidInput,
		"interest rate must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidInstallments = apperror.New(
		apperror.CodeInvalidInput,
		"installments must be between 1 and 120",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan not found",
		http.StatusNotFound,
	)
)
