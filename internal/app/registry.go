package app

import (
	"database/sql"

	"go-payroll/internal/admin"
	"go-payroll/internal/auth"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/notice"
	"go-payroll/internal/salary"
	"go-payroll/internal/wechat"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	noticeRepo := notice.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	wechatClient := wechat.NewClient()
	employeeService := employee.NewService(employeeRepo)
	authService := auth.NewService(employeeRepo, wechatClient)
	salaryService := salary.NewServiceWithOutbox(db, salaryRepo, outboxRepo)
	noticeService := notice.NewService(noticeRepo, rdb)
	adminService := admin.NewService(employeeService, salaryService)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	authHandler := auth.NewHandler(authService)
	salaryHandler := salary.NewHandler(salaryService)
	noticeHandler := notice.NewHandler(noticeService)
	adminHandler := admin.NewHandler(adminService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		salary.RegisterRoutes(api, salaryHandler)
		notice.RegisterRoutes(api, noticeHandler)
		admin.RegisterRoutes(api, adminHandler, employeeHandler)
	}

	return nil
}
