package main

import (
	"context"
	"os"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/employee"
	"go-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Seeds the bootstrap admin account and exits.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	repo := employee.NewRepository(gormDB)
	if err := bootstrap.SeedAdmin(context.Background(), repo); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
}
