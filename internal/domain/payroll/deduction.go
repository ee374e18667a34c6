// Package payroll contiene el cálculo puro de nómina: días hábiles y
// deducción por inasistencia. Sin dependencias de persistencia.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// weekendEstimate aproximación de fines de semana por mes.
const weekendEstimate = 8

// WorkDays días hábiles aproximados del período: días del mes menos 8.
func WorkDays(month, year int) int {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return daysInMonth - weekendEstimate
}

// Deduction deducción por días no trabajados:
//
//	deduction = salary × (workDays − presentDays) / workDays
//
// presentDays mayor o igual a workDays produce deducción cero (nunca negativa).
func Deduction(salary decimal.Decimal, workDays, presentDays int) decimal.Decimal {
	if workDays <= 0 || presentDays >= workDays {
		return decimal.Zero
	}
	missed := decimal.NewFromInt(int64(workDays - presentDays))
	return salary.Mul(missed).Div(decimal.NewFromInt(int64(workDays))).Round(2)
}

// NetSalary salario neto del período.
func NetSalary(salary, deduction decimal.Decimal) decimal.Decimal {
	return salary.Sub(deduction)
}
