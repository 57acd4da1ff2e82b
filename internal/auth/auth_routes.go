package auth

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		employees.POST("/wechat_login", middleware.RateLimitByIP(0.5, 5), handler.WechatLogin)
		employees.POST("/bind_wechat",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(1, 2),
			middleware.Authorize("wechat", "bind"),
			handler.BindWechat,
		)
		employees.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
	}

	token := r.Group("/token")
	{
		token.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
	}
}
