package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Employee.
const (
	EmployeeActive     = "active"
	EmployeeTerminated = "terminated"
)

// Employee representa un empleado. EmployeeCode es único e inmutable.
// Puede estar ligado a un User (UserID) para el acceso selfOnly.
type Employee struct {
	ID           string
	UserID       string // opcional, 0..1 usuario
	EmployeeCode string
	Name         string
	Email        string
	Phone        string
	Department   string
	Designation  string
	Salary       decimal.Decimal // > 0
	HireDate     *time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
