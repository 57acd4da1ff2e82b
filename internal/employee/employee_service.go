package employee

import (
	"context"
	"time"

	"go-payroll/internal/domain"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, actor domain.Actor) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, actor domain.Actor, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id uint) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// List returns the whole directory for admins, a singleton of the
// caller's own record otherwise.
func (s *service) List(ctx context.Context, actor domain.Actor) ([]EmployeeResponse, error) {
	if domain.OwnerScoped(actor.Role, "employee", "list") {
		own, err := s.repo.FindByID(ctx, actor.EmployeeID)
		if err != nil {
			s.logger.Error("list own employee failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		return []EmployeeResponse{ToResponse(*own)}, nil
	}

	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return ToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id uint) (EmployeeResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(id) {
		// Hide other rows entirely rather than acknowledging they exist.
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return ToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
	)

	var hireDate *time.Time
	if req.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			s.logger.Warn("create employee invalid hire_date",
				zap.String("hire_date", req.HireDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		hireDate = &parsed
	}

	role := domain.RoleEmployee
	if req.Role != "" {
		role = domain.ParseRole(req.Role)
	}

	empl := &Employee{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		Email:        req.Email,
		HireDate:     hireDate,
		Role:         role,
		AvatarURL:    req.AvatarURL,
	}
	if err := empl.SetPassword(req.Password); err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	// Duplicate codes surface from the unique index, not a pre-check,
	// so two concurrent creates cannot both slip through.
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return ToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(id) {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		empl.Name = *req.Name
	}
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.Position != nil {
		empl.Position = *req.Position
	}
	if req.Phone != nil {
		empl.Phone = *req.Phone
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.AvatarURL != nil {
		empl.AvatarURL = *req.AvatarURL
	}
	if req.HireDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		empl.HireDate = &parsed
	}
	if req.Role != nil {
		if !actor.IsAdmin() {
			return EmployeeResponse{}, employeeerrors.ErrRoleChangeForbidden
		}
		empl.Role = domain.ParseRole(*req.Role)
	}
	if req.Password != nil {
		// Always re-hashed, the raw value never reaches storage.
		if err := empl.SetPassword(*req.Password); err != nil {
			s.logger.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	return ToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id uint) error {
	if !actor.IsAdmin() {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
