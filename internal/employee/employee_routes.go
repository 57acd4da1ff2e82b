package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.Authorize("employee", "list"),
			handler.List,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.Authorize("employee", "read"),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize("employee", "create"),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 2),
			middleware.Authorize("employee", "update"),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize("employee", "delete"),
			handler.Delete,
		)
	}
}
