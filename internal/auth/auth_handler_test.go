package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"
	authMock "go-payroll/internal/auth/mock"
	"go-payroll/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthHandlerTest(t *testing.T) (*auth.Handler, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	return auth.NewHandler(svc), svc
}

func postJSON(c *gin.Context, path, body string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := setupAuthHandlerTest(t)

		svc.EXPECT().Login(gomock.Any(), "E001", "secret123").Return(auth.TokenPair{
			Token:        "access-token",
			RefreshToken: "refresh-token",
			Employee:     employee.EmployeeResponse{ID: 1, EmployeeCode: "E001"},
		}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/employees/login", `{"employee_code":"E001","password":"secret123"}`)

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), "access-token")
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, svc := setupAuthHandlerTest(t)

		svc.EXPECT().Login(gomock.Any(), "E001", "wrong").
			Return(auth.TokenPair{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/employees/login", `{"employee_code":"E001","password":"wrong"}`)

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Contains(t, w.Body.String(), "Incorrect employee code or password")
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		h, _ := setupAuthHandlerTest(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/employees/login", `{"employee_code":"E001"}`)

		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_WechatLogin(t *testing.T) {
	t.Run("unlinked account responds 200 with success=false", func(t *testing.T) {
		h, svc := setupAuthHandlerTest(t)

		svc.EXPECT().WechatLogin(gomock.Any(), "wx-code").
			Return(auth.TokenPair{}, autherrors.ErrAccountNotLinked)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/employees/wechat_login", `{"code":"wx-code"}`)

		h.WechatLogin(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("linked account logs in", func(t *testing.T) {
		h, svc := setupAuthHandlerTest(t)

		svc.EXPECT().WechatLogin(gomock.Any(), "wx-code").Return(auth.TokenPair{
			Token: "access-token",
		}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/employees/wechat_login", `{"code":"wx-code"}`)

		h.WechatLogin(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		h, svc := setupAuthHandlerTest(t)

		svc.EXPECT().Refresh(gomock.Any(), "stale").
			Return(auth.TokenPair{}, autherrors.ErrInvalidRefreshToken)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		postJSON(c, "/api/token/refresh", `{"refresh_token":"stale"}`)

		h.Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h, svc := setupAuthHandlerTest(t)

	svc.EXPECT().Me(gomock.Any(), uint(7)).
		Return(employee.EmployeeResponse{ID: 7, EmployeeCode: "E007", Name: "Zhao Min"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/employees/me", nil)
	c.Set("employee_id", uint(7))
	c.Set("employee_code", "E007")
	c.Set("role", "employee")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Zhao Min")
}
