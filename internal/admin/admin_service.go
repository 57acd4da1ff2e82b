package admin

import (
	"context"

	"go-payroll/internal/employee"
	"go-payroll/internal/salary"

	"go.uber.org/zap"
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	employees employee.Service
	salaries  salary.Service
	logger    *zap.Logger
}

func NewService(employees employee.Service, salaries salary.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{employees: employees, salaries: salaries, logger: l}
}

// Stats is the dashboard headline: headcount plus the current
// period's net payroll, truncated to whole currency units.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return StatsResponse{}, err
	}

	period := salary.CurrentPeriod()
	sum, err := s.salaries.TotalForPeriod(ctx, period)
	if err != nil {
		s.logger.Error("sum net salary failed", zap.String("period", period), zap.Error(err))
		return StatsResponse{}, err
	}

	return StatsResponse{
		TotalEmployees: total,
		TotalSalary:    sum.IntPart(),
	}, nil
}
