package salary

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *Salary) error
	Find(ctx context.Context, filter ListFilter) ([]Salary, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uint, period string) (*Salary, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	SumNetByPeriod(ctx context.Context, period string) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Create inserts through the bound transaction when one is set, so the
// caller can commit the statement together with other writes.
func (r *repository) Create(ctx context.Context, salary *Salary) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(salary).Error
	}

	query := `
INSERT INTO salaries (
	employee_id, period,
	base_salary, performance_salary, overtime_pay, bonus, allowance,
	social_security, housing_fund, income_tax, other_deduction,
	total_income, total_deduction, net_salary,
	pay_date, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id
`

	if salary.CreatedAt.IsZero() {
		salary.CreatedAt = time.Now()
	}

	return r.tx.QueryRowContext(
		ctx, query,
		salary.EmployeeID, salary.Period,
		salary.BaseSalary, salary.PerformanceSalary, salary.OvertimePay,
		salary.Bonus, salary.Allowance,
		salary.SocialSecurity, salary.HousingFund, salary.IncomeTax, salary.OtherDeduction,
		salary.TotalIncome, salary.TotalDeduction, salary.NetSalary,
		salary.PayDate, salary.CreatedAt,
	).Scan(&salary.ID)
}

func (r *repository) Find(ctx context.Context, filter ListFilter) ([]Salary, error) {
	var salaries []Salary

	db := r.db.WithContext(ctx).Model(&Salary{})
	if filter.EmployeeID != nil {
		db = db.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Period != "" {
		db = db.Where("period = ?", filter.Period)
	}

	err := db.Order("created_at DESC").Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID uint, period string) (*Salary, error) {
	var salary Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("period = ?", period).
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SumNetByPeriod(ctx context.Context, period string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&Salary{}).
		Select("COALESCE(SUM(net_salary), 0)").
		Where("period = ?", period).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
