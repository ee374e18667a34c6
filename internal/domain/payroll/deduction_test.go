package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/erp-pyme/internal/domain/payroll"
)

func TestWorkDays(t *testing.T) {
	// Marzo 2024 tiene 31 días -> 23 hábiles aproximados
	assert.Equal(t, 23, payroll.WorkDays(3, 2024))
	// Febrero 2024 (bisiesto) tiene 29 -> 21
	assert.Equal(t, 21, payroll.WorkDays(2, 2024))
	// Febrero 2023 tiene 28 -> 20
	assert.Equal(t, 20, payroll.WorkDays(2, 2023))
}

func TestDeduction_AsistenciaCompleta(t *testing.T) {
	salary := decimal.NewFromInt(2300)
	got := payroll.Deduction(salary, 23, 23)
	assert.True(t, got.IsZero(), "asistencia completa no genera deducción")
}

func TestDeduction_DiasFaltados(t *testing.T) {
	// salario 2300, 23 hábiles, 20 presentes -> 2300 × 3/23 = 300
	salary := decimal.NewFromInt(2300)
	got := payroll.Deduction(salary, 23, 20)
	assert.True(t, got.Equal(decimal.NewFromInt(300)), "deducción esperada 300, obtuvo %s", got)
}

func TestDeduction_NuncaNegativa(t *testing.T) {
	salary := decimal.NewFromInt(1000)
	// Más presentes que hábiles (datos sucios) -> cero
	assert.True(t, payroll.Deduction(salary, 20, 25).IsZero())
	// workDays cero no divide
	assert.True(t, payroll.Deduction(salary, 0, 0).IsZero())
}

func TestNetSalary(t *testing.T) {
	salary := decimal.NewFromInt(2300)
	ded := decimal.NewFromInt(300)
	assert.True(t, payroll.NetSalary(salary, ded).Equal(decimal.NewFromInt(2000)))
}
