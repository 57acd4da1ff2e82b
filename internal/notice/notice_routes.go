package notice

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notices := r.Group("/notices")
	{
		// Public: the board shows before login.
		notices.GET("", middleware.RateLimitByIP(5, 10), handler.ListRecent)

		notices.POST("",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize("notice", "create"),
			handler.Create,
		)
	}
}
