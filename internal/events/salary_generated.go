package events

import "time"

const SalaryGeneratedTopic = "payroll.salary.lifecycle.v1"

type SalaryGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	SalaryID   uint      `json:"salary_id"`
	EmployeeID uint      `json:"employee_id"`
	Period     string    `json:"period"`
	NetSalary  string    `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
