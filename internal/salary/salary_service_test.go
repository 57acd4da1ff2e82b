package salary_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"
	salaryMock "go-payroll/internal/salary/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupSalaryTest(t *testing.T) (salary.Service, *salaryMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := salaryMock.NewMockRepository(ctrl)
	return salary.NewService(nil, repo), repo
}

var (
	adminActor = domain.Actor{EmployeeID: 1, EmployeeCode: "admin", Role: domain.RoleAdmin}
	selfActor  = domain.Actor{EmployeeID: 2, EmployeeCode: "E002", Role: domain.RoleEmployee}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSalaryService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives totals from the nine components", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stmt *salary.Salary) error {
				assert.True(t, stmt.TotalIncome.Equal(dec("6500")))
				assert.True(t, stmt.TotalDeduction.Equal(dec("850")))
				assert.True(t, stmt.NetSalary.Equal(dec("5650")))
				stmt.ID = 1
				return nil
			})

		resp, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID:        2,
			Period:            "2024-06",
			BaseSalary:        dec("5000"),
			PerformanceSalary: dec("1000"),
			OvertimePay:       dec("200"),
			Allowance:         dec("300"),
			SocialSecurity:    dec("400"),
			HousingFund:       dec("300"),
			IncomeTax:         dec("150"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "6500.00", resp.TotalIncome)
		assert.Equal(t, "850.00", resp.TotalDeduction)
		assert.Equal(t, "5650.00", resp.NetSalary)
		assert.Equal(t, "0.00", resp.Bonus)
		assert.Equal(t, "0.00", resp.OtherDeduction)
	})

	t.Run("absent components default to zero", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.TotalIncome)
		assert.Equal(t, "0.00", resp.NetSalary)
	})

	t.Run("component fractions are normalized before summing", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
			BaseSalary: dec("5000.005"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "5000.01", resp.BaseSalary)
		assert.Equal(t, "5000.01", resp.TotalIncome)
	})

	t.Run("malformed period", func(t *testing.T) {
		svc, _ := setupSalaryTest(t)

		_, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "June 2024",
		})
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidPeriodFormat)
	})

	t.Run("malformed pay date", func(t *testing.T) {
		svc, _ := setupSalaryTest(t)

		_, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
			PayDate:    "15/06/2024",
		})
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidPayDate)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(99)).Return(false, nil)

		_, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 99,
			Period:     "2024-06",
		})
		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate period from unique index", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_salary_employee_period",
		})

		_, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
		})
		assert.ErrorIs(t, err, salaryerrors.ErrDuplicatePeriod)
	})

	t.Run("statement and outbox event commit in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salaryMock.NewMockRepository(ctrl)
		txRepo := salaryMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		txOutbox := kafkaMock.NewMockOutboxRepository(ctrl)

		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := salary.NewServiceWithOutbox(db, repo, outbox)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(txRepo)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stmt *salary.Salary) error {
				stmt.ID = 9
				return nil
			})
		outbox.EXPECT().WithTx(gomock.Any()).Return(txOutbox)
		txOutbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "salary", event.AggregateType)
				assert.Equal(t, "9", event.AggregateID)
				assert.Equal(t, "salary_generated", event.EventType)
				assert.Equal(t, events.SalaryGeneratedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				return nil
			})
		dbMock.ExpectCommit()

		resp, err := svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
			BaseSalary: dec("5000"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "5000.00", resp.NetSalary)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the statement back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salaryMock.NewMockRepository(ctrl)
		txRepo := salaryMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		txOutbox := kafkaMock.NewMockOutboxRepository(ctrl)

		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := salary.NewServiceWithOutbox(db, repo, outbox)

		repo.EXPECT().EmployeeExists(gomock.Any(), uint(2)).Return(true, nil)
		dbMock.ExpectBegin()
		repo.EXPECT().WithTx(gomock.Any()).Return(txRepo)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		outbox.EXPECT().WithTx(gomock.Any()).Return(txOutbox)
		txOutbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)
		dbMock.ExpectRollback()

		_, err = svc.Generate(ctx, adminActor, salary.GenerateSalaryRequest{
			EmployeeID: 2,
			Period:     "2024-06",
		})
		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestSalaryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin filter is pinned to their own id", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		foreign := uint(7)
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter salary.ListFilter) ([]salary.Salary, error) {
				assert.NotNil(t, filter.EmployeeID)
				assert.Equal(t, uint(2), *filter.EmployeeID)
				return []salary.Salary{}, nil
			})

		_, err := svc.List(ctx, selfActor, salary.ListFilter{EmployeeID: &foreign})
		assert.NoError(t, err)
	})

	t.Run("admin filter passes through", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		target := uint(7)
		repo.EXPECT().Find(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter salary.ListFilter) ([]salary.Salary, error) {
				assert.NotNil(t, filter.EmployeeID)
				assert.Equal(t, uint(7), *filter.EmployeeID)
				assert.Equal(t, "2024-06", filter.Period)
				return []salary.Salary{}, nil
			})

		_, err := svc.List(ctx, adminActor, salary.ListFilter{EmployeeID: &target, Period: "2024-06"})
		assert.NoError(t, err)
	})
}

func TestSalaryService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("existing statement", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().FindByEmployeeAndPeriod(gomock.Any(), uint(2), salary.CurrentPeriod()).
			Return(&salary.Salary{NetSalary: dec("5650")}, nil)

		resp, err := svc.Summary(ctx, selfActor)
		assert.NoError(t, err)
		assert.Equal(t, salary.CurrentPeriod(), resp.Period)
		assert.Equal(t, "5650.00", resp.TotalSalary)
	})

	t.Run("no statement reads as zero", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().FindByEmployeeAndPeriod(gomock.Any(), uint(2), salary.CurrentPeriod()).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := svc.Summary(ctx, selfActor)
		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.TotalSalary)
	})

	t.Run("repository failure surfaces as an error", func(t *testing.T) {
		svc, repo := setupSalaryTest(t)

		repo.EXPECT().FindByEmployeeAndPeriod(gomock.Any(), uint(2), salary.CurrentPeriod()).
			Return(nil, errors.New("pq: connection refused"))

		_, err := svc.Summary(ctx, selfActor)
		assert.Error(t, err)
	})
}

func TestSalaryService_TotalForPeriod(t *testing.T) {
	svc, repo := setupSalaryTest(t)

	repo.EXPECT().SumNetByPeriod(gomock.Any(), "2024-06").Return(dec("12345.67"), nil)

	total, err := svc.TotalForPeriod(context.Background(), "2024-06")
	assert.NoError(t, err)
	assert.True(t, total.Equal(dec("12345.67")))
}
