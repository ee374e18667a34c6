package dto

import "github.com/shopspring/decimal"

// GeneratePayrollRequest período a generar.
type GeneratePayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// GeneratePayrollResponse cuántos registros se insertaron en esta corrida.
type GeneratePayrollResponse struct {
	Generated int    `json:"generated"`
	Message   string `json:"message"`
}

// PayrollResponse nómina con datos del empleado.
type PayrollResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Department   string          `json:"department,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       string          `json:"status"`
	PaidDate     string          `json:"paid_date,omitempty"`
}
