package employee

import "time"

type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required,max=20"`
	Name         string `json:"name" binding:"required,max=50"`
	Password     string `json:"password" binding:"required,min=6"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	HireDate     string `json:"hire_date"`
	Role         string `json:"role" binding:"omitempty,oneof=employee admin"`
	AvatarURL    string `json:"avatar_url"`
}

// UpdateEmployeeRequest uses pointers so absent fields are left untouched.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,email"`
	HireDate   *string `json:"hire_date"`
	Role       *string `json:"role" binding:"omitempty,oneof=employee admin"`
	AvatarURL  *string `json:"avatar_url"`
}

// EmployeeResponse is the profile projection. It never carries the
// password hash.
type EmployeeResponse struct {
	ID           uint    `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	HireDate     *string `json:"hire_date"`
	Role         string  `json:"role"`
	WechatBound  bool    `json:"wechat_bound"`
	AvatarURL    string  `json:"avatar_url"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToResponse maps the entity to its wire projection; auth and admin reuse
// it so the password can never leak through a second mapping.
func ToResponse(e Employee) EmployeeResponse {
	var hireDate *string
	if e.HireDate != nil {
		s := e.HireDate.Format("2006-01-02")
		hireDate = &s
	}

	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Department:   e.Department,
		Position:     e.Position,
		Phone:        e.Phone,
		Email:        e.Email,
		HireDate:     hireDate,
		Role:         string(e.Role),
		WechatBound:  e.WechatOpenID != nil && *e.WechatOpenID != "",
		AvatarURL:    e.AvatarURL,
		CreatedAt:    e.CreatedAt.Format(time.DateTime),
		UpdatedAt:    e.UpdatedAt.Format(time.DateTime),
	}
}

func ToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToResponse(e)
	}
	return res
}
