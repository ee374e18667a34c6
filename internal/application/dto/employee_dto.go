package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado.
type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date"` // YYYY-MM-DD
	UserID       string          `json:"user_id"`
}

// UpdateEmployeeRequest modificación de empleado. EmployeeCode no se puede cambiar.
type UpdateEmployeeRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Department  string           `json:"department"`
	Designation string           `json:"designation"`
	Salary      *decimal.Decimal `json:"salary"`
	HireDate    string           `json:"hire_date"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id,omitempty"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
