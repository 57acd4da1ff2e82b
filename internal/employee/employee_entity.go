package employee

import (
	"time"

	"go-payroll/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type Employee struct {
	ID           uint        `gorm:"primaryKey"`
	EmployeeCode string      `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_code"`
	Name         string      `gorm:"type:varchar(50);not null"`
	Password     string      `gorm:"type:varchar(255);not null"`
	Department   string      `gorm:"type:varchar(50)"`
	Position     string      `gorm:"type:varchar(50)"`
	Phone        string      `gorm:"type:varchar(20)"`
	Email        string      `gorm:"type:varchar(255)"`
	HireDate     *time.Time  `gorm:"type:date"`
	Role         domain.Role `gorm:"type:varchar(20);not null;default:'employee'"`
	WechatOpenID *string     `gorm:"type:varchar(100);uniqueIndex:uq_employee_wechat_openid"`
	AvatarURL    string      `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// SetPassword stores a bcrypt hash; the raw value is never persisted.
func (e *Employee) SetPassword(raw string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hashed)
	return nil
}

func (e *Employee) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(raw)) == nil
}
