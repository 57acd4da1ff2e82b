package bootstrap

import (
	"context"
	"errors"
	"os"
	"time"

	"go-payroll/internal/domain"
	"go-payroll/internal/employee"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdmin ensures the bootstrap admin account exists. Idempotent:
// an existing account is left untouched, password included.
func SeedAdmin(ctx context.Context, repo employee.Repository) error {
	code := os.Getenv("ADMIN_CODE")
	if code == "" {
		code = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	if _, err := repo.FindByCode(ctx, code); err == nil {
		zap.L().Info("admin account already present", zap.String("employee_code", code))
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now()
	admin := &employee.Employee{
		EmployeeCode: code,
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		HireDate:     &now,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Info("admin account seeded", zap.String("employee_code", code))
	return nil
}
