package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/domain"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// identity and role on the request. Refresh tokens are rejected here so
// they cannot be replayed as access tokens.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		if typ, _ := claims["typ"].(string); typ != "access" {
			response.Error(c, http.StatusUnauthorized, "Access token required", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(float64)
		if !ok || employeeID <= 0 {
			response.Error(c, http.StatusUnauthorized, "Employee ID not found in token", nil)
			c.Abort()
			return
		}

		employeeCode, _ := claims["employee_code"].(string)
		role, _ := claims["role"].(string)

		c.Set("employee_id", uint(employeeID))
		c.Set("employee_code", employeeCode)
		c.Set("role", role)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), uint(employeeID))
		ctx = contextutil.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActorFrom rebuilds the verified caller from the gin context. Zero value
// means the auth middleware did not run.
func ActorFrom(c *gin.Context) domain.Actor {
	id, _ := c.Get("employee_id")
	employeeID, _ := id.(uint)
	return domain.Actor{
		EmployeeID:   employeeID,
		EmployeeCode: c.GetString("employee_code"),
		Role:         domain.ParseRole(c.GetString("role")),
	}
}

// Authorize applies the role gate for one (resource, action) pair before
// the handler body runs. Ownership narrowing stays in the services.
func Authorize(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.EmployeeID == 0 {
			response.Error(c, http.StatusUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		if !domain.Allowed(actor.Role, resource, action) {
			response.Error(c, http.StatusForbidden, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
