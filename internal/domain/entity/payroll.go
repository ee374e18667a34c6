package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de PayrollRecord. pending -> paid ocurre exactamente una vez;
// una vez paid el registro es inmutable.
const (
	PayrollPending = "pending"
	PayrollPaid    = "paid"
)

// PayrollRecord nómina de un empleado para un período.
// La terna (EmployeeID, Month, Year) es única; la generación es idempotente.
// Invariante: NetSalary = BasicSalary - Deductions.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
	PaidDate    *time.Time
	CreatedAt   time.Time
}
