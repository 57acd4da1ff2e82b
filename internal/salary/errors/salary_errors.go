package salaryerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDuplicatePeriod = apperror.New(
		"DUPLICATE_PERIOD",
		"A salary statement for this employee and period already exists",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeValidationError,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidPayDate = apperror.New(
		apperror.CodeValidationError,
		"invalid pay_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary statement not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
