package autherrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Incorrect employee code or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Token is invalid",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeInvalidToken,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeInvalidToken,
		"Refresh token is invalid or expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrAccountNotLinked = apperror.New(
		"ACCOUNT_NOT_LINKED",
		"Please log in with your employee code and password first, then link WeChat from your profile",
		http.StatusOK,
	)
	ErrForbidden = apperror.ErrForbidden
)
