package app

import (
	"context"
	"net/http"
	"os"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/employee"
	"go-payroll/internal/notice"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const createOutboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id            VARCHAR(36) PRIMARY KEY,
	request_id    VARCHAR(64),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id  VARCHAR(64) NOT NULL,
	event_type    VARCHAR(100) NOT NULL,
	topic         VARCHAR(200) NOT NULL,
	payload       JSONB NOT NULL,
	status        VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count   INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at  TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	employeeRepo := employee.NewRepository(gormDB)
	if err := bootstrap.SeedAdmin(context.Background(), employeeRepo); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// The notice cache degrades to direct DB reads without Redis.
		zap.L().Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := registerModules(router, sqlDB, gormDB, redisClient); err != nil {
		return err
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&salary.Salary{},
		&notice.Notice{},
	); err != nil {
		return err
	}
	// The outbox is plain database/sql, not a gorm model.
	return gormDB.Exec(createOutboxTable).Error
}
