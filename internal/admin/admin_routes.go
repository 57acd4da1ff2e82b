package admin

import (
	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, employees *employee.Handler) {
	group := r.Group("/admin", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5))
	{
		group.GET("/stats", middleware.Authorize("admin", "stats"), handler.Stats)

		// Alias for the employee create endpoint used by the admin console.
		group.POST("/employees", middleware.Authorize("employee", "create"), employees.Create)
	}
}
