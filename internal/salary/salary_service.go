package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-payroll/internal/domain"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actor domain.Actor, req GenerateSalaryRequest) (SalaryResponse, error)
	List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]SalaryResponse, error)
	Summary(ctx context.Context, actor domain.Actor) (SummaryResponse, error)
	TotalForPeriod(ctx context.Context, period string) (decimal.Decimal, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// CurrentPeriod is the calendar year-month payroll cycle, e.g. "2024-06".
func CurrentPeriod() string {
	return time.Now().Format("2006-01")
}

func (s *service) Generate(ctx context.Context, actor domain.Actor, req GenerateSalaryRequest) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate salary requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	if _, err := time.Parse("2006-01", req.Period); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidPeriodFormat
	}

	var payDate *time.Time
	if req.PayDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PayDate)
		if err != nil {
			return SalaryResponse{}, salaryerrors.ErrInvalidPayDate
		}
		payDate = &parsed
	}

	exists, err := s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("generate salary employee lookup failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	if !exists {
		return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
	}

	// All arithmetic stays in fixed-point decimal; components are
	// normalized to two fraction digits before summing.
	stmt := &Salary{
		EmployeeID:        req.EmployeeID,
		Period:            req.Period,
		BaseSalary:        req.BaseSalary.Round(2),
		PerformanceSalary: req.PerformanceSalary.Round(2),
		OvertimePay:       req.OvertimePay.Round(2),
		Bonus:             req.Bonus.Round(2),
		Allowance:         req.Allowance.Round(2),
		SocialSecurity:    req.SocialSecurity.Round(2),
		HousingFund:       req.HousingFund.Round(2),
		IncomeTax:         req.IncomeTax.Round(2),
		OtherDeduction:    req.OtherDeduction.Round(2),
		PayDate:           payDate,
	}
	stmt.TotalIncome = decimal.Sum(
		stmt.BaseSalary,
		stmt.PerformanceSalary,
		stmt.OvertimePay,
		stmt.Bonus,
		stmt.Allowance,
	)
	stmt.TotalDeduction = decimal.Sum(
		stmt.SocialSecurity,
		stmt.HousingFund,
		stmt.IncomeTax,
		stmt.OtherDeduction,
	)
	stmt.NetSalary = stmt.TotalIncome.Sub(stmt.TotalDeduction)

	// The unique index on (employee_id, period) is the duplicate guard;
	// no pre-existence check, so concurrent generates cannot both win.
	if s.db != nil && s.outbox != nil {
		err = s.createWithEvent(ctx, rid, stmt)
	} else {
		err = s.repo.Create(ctx, stmt)
	}
	if err != nil {
		s.logger.Warn("generate salary persist failed",
			zap.Uint("employee_id", req.EmployeeID),
			zap.String("period", req.Period),
			zap.Error(err),
		)
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("generate salary success",
		zap.String("request_id", rid),
		zap.Uint("salary_id", stmt.ID),
		zap.Uint("employee_id", stmt.EmployeeID),
		zap.String("period", stmt.Period),
	)

	return mapToResponse(*stmt), nil
}

// createWithEvent writes the statement and its salary_generated outbox
// row in one transaction; a committed statement always has its event.
func (s *service) createWithEvent(ctx context.Context, rid string, stmt *Salary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, stmt); err != nil {
		return err
	}

	event := events.SalaryGeneratedEvent{
		EventType:  "salary_generated",
		RequestID:  rid,
		SalaryID:   stmt.ID,
		EmployeeID: stmt.EmployeeID,
		Period:     stmt.Period,
		NetSalary:  stmt.NetSalary.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary",
		AggregateID:   strconv.FormatUint(uint64(stmt.ID), 10),
		EventType:     event.EventType,
		Topic:         events.SalaryGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]SalaryResponse, error) {
	// Ownership narrowing: whatever employeeId was supplied, a non-admin
	// only ever sees their own statements.
	if domain.OwnerScoped(actor.Role, "salary", "list") {
		own := actor.EmployeeID
		filter.EmployeeID = &own
	}

	salaries, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("list salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) Summary(ctx context.Context, actor domain.Actor) (SummaryResponse, error) {
	period := CurrentPeriod()

	stmt, err := s.repo.FindByEmployeeAndPeriod(ctx, actor.EmployeeID, period)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No statement this month reads as zero, not as an error.
		return SummaryResponse{
			Period:      period,
			TotalSalary: decimal.Zero.StringFixed(2),
		}, nil
	}
	if err != nil {
		s.logger.Error("salary summary lookup failed",
			zap.Uint("employee_id", actor.EmployeeID),
			zap.String("period", period),
			zap.Error(err),
		)
		return SummaryResponse{}, mapRepositoryError(err)
	}

	return SummaryResponse{
		Period:      period,
		TotalSalary: stmt.NetSalary.StringFixed(2),
	}, nil
}

func (s *service) TotalForPeriod(ctx context.Context, period string) (decimal.Decimal, error) {
	return s.repo.SumNetByPeriod(ctx, period)
}
