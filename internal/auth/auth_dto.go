package auth

import "go-payroll/internal/employee"

type LoginRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type WechatLoginRequest struct {
	Code     string         `json:"code" binding:"required"`
	UserInfo map[string]any `json:"userInfo"`
}

type BindWechatRequest struct {
	Code     string         `json:"code" binding:"required"`
	UserInfo map[string]any `json:"userInfo"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair carries the issued tokens plus the employee profile, matching
// the login response the mini-program expects.
type TokenPair struct {
	Token        string                    `json:"token"`
	RefreshToken string                    `json:"refresh_token"`
	Employee     employee.EmployeeResponse `json:"employee"`
}
