package salary

import "github.com/shopspring/decimal"

// GenerateSalaryRequest carries the nine components; absent fields
// decode to decimal zero.
type GenerateSalaryRequest struct {
	EmployeeID        uint            `json:"employee_id" binding:"required"`
	Period            string          `json:"period" binding:"required"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	PerformanceSalary decimal.Decimal `json:"performance_salary"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	Bonus             decimal.Decimal `json:"bonus"`
	Allowance         decimal.Decimal `json:"allowance"`
	SocialSecurity    decimal.Decimal `json:"social_security"`
	HousingFund       decimal.Decimal `json:"housing_fund"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	OtherDeduction    decimal.Decimal `json:"other_deduction"`
	PayDate           string          `json:"pay_date"`
}

// ListFilter narrows the salary listing. For non-admin callers the
// service pins EmployeeID to the actor regardless of what was supplied.
type ListFilter struct {
	EmployeeID *uint
	Period     string
}

type SalaryResponse struct {
	ID                uint    `json:"id"`
	EmployeeID        uint    `json:"employee_id"`
	Period            string  `json:"period"`
	BaseSalary        string  `json:"base_salary"`
	PerformanceSalary string  `json:"performance_salary"`
	OvertimePay       string  `json:"overtime_pay"`
	Bonus             string  `json:"bonus"`
	Allowance         string  `json:"allowance"`
	SocialSecurity    string  `json:"social_security"`
	HousingFund       string  `json:"housing_fund"`
	IncomeTax         string  `json:"income_tax"`
	OtherDeduction    string  `json:"other_deduction"`
	TotalIncome       string  `json:"total_income"`
	TotalDeduction    string  `json:"total_deduction"`
	NetSalary         string  `json:"net_salary"`
	PayDate           *string `json:"pay_date"`
	CreatedAt         string  `json:"created_at"`
}

type SummaryResponse struct {
	Period      string `json:"period"`
	TotalSalary string `json:"totalSalary"`
}

func mapToResponse(s Salary) SalaryResponse {
	var payDate *string
	if s.PayDate != nil {
		d := s.PayDate.Format("2006-01-02")
		payDate = &d
	}

	return SalaryResponse{
		ID:                s.ID,
		EmployeeID:        s.EmployeeID,
		Period:            s.Period,
		BaseSalary:        s.BaseSalary.StringFixed(2),
		PerformanceSalary: s.PerformanceSalary.StringFixed(2),
		OvertimePay:       s.OvertimePay.StringFixed(2),
		Bonus:             s.Bonus.StringFixed(2),
		Allowance:         s.Allowance.StringFixed(2),
		SocialSecurity:    s.SocialSecurity.StringFixed(2),
		HousingFund:       s.HousingFund.StringFixed(2),
		IncomeTax:         s.IncomeTax.StringFixed(2),
		OtherDeduction:    s.OtherDeduction.StringFixed(2),
		TotalIncome:       s.TotalIncome.StringFixed(2),
		TotalDeduction:    s.TotalDeduction.StringFixed(2),
		NetSalary:         s.NetSalary.StringFixed(2),
		PayDate:           payDate,
		CreatedAt:         s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(salaries []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(salaries))
	for i, s := range salaries {
		res[i] = mapToResponse(s)
	}
	return res
}
