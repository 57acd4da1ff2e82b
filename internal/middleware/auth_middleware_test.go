package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/domain"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, typ string, role domain.Role, exp time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"employee_id":   uint(2),
		"employee_code": "E002",
		"role":          string(role),
		"typ":           typ,
		"exp":           time.Now().Add(exp).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func protectedRouter(authorize gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware()}
	if authorize != nil {
		handlers = append(handlers, authorize)
	}
	handlers = append(handlers, func(c *gin.Context) {
		actor := middleware.ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"employee_code": actor.EmployeeCode, "role": string(actor.Role)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid bearer token", func(t *testing.T) {
		r := protectedRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "access", domain.RoleEmployee, time.Minute))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "E002")
	})

	t.Run("token from cookie", func(t *testing.T) {
		r := protectedRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "access", domain.RoleEmployee, time.Minute)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r := protectedRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r := protectedRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "access", domain.RoleEmployee, -time.Minute))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("refresh token cannot act as access token", func(t *testing.T) {
		r := protectedRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "refresh", domain.RoleEmployee, time.Minute))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		r := protectedRouter(nil)

		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"employee_id": uint(2),
			"typ":         "access",
			"exp":         time.Now().Add(time.Minute).Unix(),
		})
		forged, err := other.SignedString([]byte("wrong-secret"))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthorize(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("employee blocked from admin resource", func(t *testing.T) {
		r := protectedRouter(middleware.Authorize("admin", "stats"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "access", domain.RoleEmployee, time.Minute))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		r := protectedRouter(middleware.Authorize("admin", "stats"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "access", domain.RoleAdmin, time.Minute))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
