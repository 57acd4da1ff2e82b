package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateCode = apperror.New(
		"DUPLICATE_CODE",
		"Employee code already exists",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidationError,
		"invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRoleChangeForbidden = apperror.New(
		apperror.CodeForbidden,
		"Only an administrator can change roles",
		http.StatusForbidden,
	)
)
