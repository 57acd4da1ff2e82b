package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one statement per (employee, period). The composite unique
// index is the only duplicate guard; concurrent generates race on it and
// exactly one wins.
type Salary struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Period     string `gorm:"type:varchar(10);not null;uniqueIndex:uq_salary_employee_period"`

	// Income components
	BaseSalary        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PerformanceSalary decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	OvertimePay       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Bonus             decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Allowance         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	// Deduction components
	SocialSecurity decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	HousingFund    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	IncomeTax      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	OtherDeduction decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	// Derived at creation time, immutable afterwards
	TotalIncome    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalDeduction decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	NetSalary      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	PayDate   *time.Time `gorm:"type:date"`
	CreatedAt time.Time
}

func (Salary) TableName() string {
	return "salaries"
}
