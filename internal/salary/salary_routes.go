package salary

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.Authorize("salary", "list"),
			handler.List,
		)
		salaries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize("salary", "create"),
			handler.Generate,
		)
	}

	// The mini-program home screen polls this for the current month.
	r.GET("/employees/stats",
		middleware.AuthMiddleware(),
		middleware.RateLimitByUser(2, 5),
		middleware.Authorize("salary", "summary"),
		handler.Summary,
	)
}
