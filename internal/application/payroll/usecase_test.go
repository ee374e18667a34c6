package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-pyme/internal/application/payroll"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePayrollRepo struct {
	records map[string]*entity.PayrollRecord
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]*entity.PayrollRecord)}
}

func (r *fakePayrollRepo) Create(rec *entity.PayrollRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *fakePayrollRepo) GetByID(id string) (*entity.PayrollRecord, error) {
	return r.records[id], nil
}

func (r *fakePayrollRepo) GetByEmployeePeriod(employeeID string, month, year int) (*entity.PayrollRecord, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Month == month && rec.Year == year {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakePayrollRepo) List(month, year int) ([]*entity.PayrollRecord, error) {
	var out []*entity.PayrollRecord
	for _, rec := range r.records {
		if month != 0 && rec.Month != month {
			continue
		}
		if year != 0 && rec.Year != year {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakePayrollRepo) ListByEmployee(employeeID string) ([]*entity.PayrollRecord, error) {
	var out []*entity.PayrollRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) MarkPaid(id string, paidDate time.Time) error {
	if rec, ok := r.records[id]; ok {
		rec.Status = entity.PayrollPaid
		d := paidDate
		rec.PaidDate = &d
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}

func (r *fakeEmployeeRepo) GetByCode(code string) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(status string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Terminate(id string) error {
	if e, ok := r.employees[id]; ok {
		e.Status = entity.EmployeeTerminated
	}
	return nil
}

type fakeAttendanceRepo struct {
	records []*entity.AttendanceRecord
}

func (r *fakeAttendanceRepo) Upsert(rec *entity.AttendanceRecord) error {
	for i, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date == rec.Date {
			r.records[i] = rec
			return nil
		}
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeAttendanceRepo) List(filter repository.AttendanceFilter) ([]*entity.AttendanceRecord, error) {
	return r.records, nil
}

func (r *fakeAttendanceRepo) CountPresent(employeeID string, month, year int) (int, bool, error) {
	count, has := 0, false
	for _, rec := range r.records {
		d, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		if rec.EmployeeID != employeeID || d.Year() != year || int(d.Month()) != month {
			continue
		}
		has = true
		if rec.Status == entity.AttendancePresent || rec.Status == entity.AttendanceLate {
			count++
		}
	}
	return count, has, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (r *fakeLedgerRepo) Append(e *entity.LedgerEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeLedgerRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}

func (r *fakeLedgerRepo) ListByPeriod(year, month int) ([]*entity.LedgerEntry, error) {
	return r.entries, nil
}

func (r *fakeLedgerRepo) Summary() (*entity.LedgerSummary, error) {
	return &entity.LedgerSummary{}, nil
}

type fakeTxRunner struct {
	payrolls *fakePayrollRepo
	ledger   *fakeLedgerRepo
}

func (r *fakeTxRunner) RunPayroll(ctx context.Context, fn func(
	payrollRepo repository.PayrollRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(r.payrolls, r.ledger)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno: dos empleados activos y uno terminado, período marzo 2024
// (31 días, 23 días laborables).
// ──────────────────────────────────────────────────────────────────────────────

type payrollEnv struct {
	uc         *payroll.UseCase
	payrolls   *fakePayrollRepo
	attendance *fakeAttendanceRepo
	ledger     *fakeLedgerRepo
}

const (
	testEmpA = "emp-a"
	testEmpB = "emp-b"
)

func newPayrollEnv(t *testing.T) *payrollEnv {
	t.Helper()
	payrolls := newFakePayrollRepo()
	employees := newFakeEmployeeRepo()
	attendance := &fakeAttendanceRepo{}
	ledger := &fakeLedgerRepo{}

	require.NoError(t, employees.Create(&entity.Employee{
		ID: testEmpA, EmployeeCode: "EMP001", Name: "Ana",
		Salary: decimal.NewFromInt(2300), Status: entity.EmployeeActive,
	}))
	require.NoError(t, employees.Create(&entity.Employee{
		ID: testEmpB, EmployeeCode: "EMP002", Name: "Bruno",
		Salary: decimal.NewFromInt(4600), Status: entity.EmployeeActive,
	}))
	require.NoError(t, employees.Create(&entity.Employee{
		ID: "emp-c", EmployeeCode: "EMP003", Name: "Carla",
		Salary: decimal.NewFromInt(1000), Status: entity.EmployeeTerminated,
	}))

	runner := &fakeTxRunner{payrolls: payrolls, ledger: ledger}
	uc := payroll.NewUseCase(runner, payrolls, employees, attendance)
	return &payrollEnv{uc: uc, payrolls: payrolls, attendance: attendance, ledger: ledger}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generate
// ──────────────────────────────────────────────────────────────────────────────

// Sin registros de asistencia del período: asistencia completa, deducción cero.
func TestGenerate_SinAsistenciaEsCompleta(t *testing.T) {
	env := newPayrollEnv(t)

	resp, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Generated, "solo los empleados activos")

	rec, err := env.payrolls.GetByEmployeePeriod(testEmpA, 3, 2024)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Deductions.IsZero(), "sin datos de asistencia no hay deducción")
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(2300)))
	assert.Equal(t, entity.PayrollPending, rec.Status)
}

// Con asistencia parcial la deducción es proporcional a los días perdidos:
// marzo 2024 tiene 23 días laborables; 20 presentes sobre 2300 deducen 300.
func TestGenerate_DeduccionProporcional(t *testing.T) {
	env := newPayrollEnv(t)
	for day := 1; day <= 20; day++ {
		require.NoError(t, env.attendance.Upsert(&entity.AttendanceRecord{
			EmployeeID: testEmpA,
			Date:       time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Status:     entity.AttendancePresent,
		}))
	}

	_, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)

	rec, _ := env.payrolls.GetByEmployeePeriod(testEmpA, 3, 2024)
	require.NotNil(t, rec)
	assert.True(t, rec.Deductions.Equal(decimal.NewFromInt(300)),
		"2300 × (23-20)/23 = 300, obtuvo %s", rec.Deductions)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(2000)))
}

// Los días late cuentan como presentes; absent no.
func TestGenerate_LateCuentaComoPresente(t *testing.T) {
	env := newPayrollEnv(t)
	dates := []struct {
		day    int
		status string
	}{
		{1, entity.AttendancePresent},
		{2, entity.AttendanceLate},
		{3, entity.AttendanceAbsent},
	}
	for _, d := range dates {
		require.NoError(t, env.attendance.Upsert(&entity.AttendanceRecord{
			EmployeeID: testEmpA,
			Date:       time.Date(2024, 3, d.day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Status:     d.status,
		}))
	}

	_, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)

	// presentDays = 2 de 23: deducción = 2300 × 21/23 = 2100
	rec, _ := env.payrolls.GetByEmployeePeriod(testEmpA, 3, 2024)
	require.NotNil(t, rec)
	assert.True(t, rec.Deductions.Equal(decimal.NewFromInt(2100)),
		"esperaba 2100, obtuvo %s", rec.Deductions)
}

// Reejecutar el mismo período no duplica ni recalcula.
func TestGenerate_Idempotente(t *testing.T) {
	env := newPayrollEnv(t)

	first, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Generated)

	second, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Generated, "la segunda corrida no genera nada")
	assert.Len(t, env.payrolls.records, 2)
}

func TestGenerate_PeriodoInvalido(t *testing.T) {
	env := newPayrollEnv(t)

	_, err := env.uc.Generate(context.Background(), 13, 2024)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.Generate(context.Background(), 0, 2024)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkPaid_RegistraAsientoExpense(t *testing.T) {
	env := newPayrollEnv(t)
	_, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)
	rec, _ := env.payrolls.GetByEmployeePeriod(testEmpA, 3, 2024)

	resp, err := env.uc.MarkPaid(context.Background(), "user-1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PayrollPaid, resp.Status)
	assert.NotEmpty(t, resp.PaidDate)

	require.Len(t, env.ledger.entries, 1)
	entry := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerExpense, entry.Type)
	assert.Equal(t, "Salary", entry.Category)
	assert.Equal(t, entity.RefPayroll, entry.ReferenceType)
	assert.Equal(t, rec.ID, entry.ReferenceID)
	assert.True(t, entry.Amount.Equal(rec.NetSalary), "el asiento es por el neto, no el bruto")
}

// Pagar dos veces falla y no duplica el asiento.
func TestMarkPaid_NoEsReejecutable(t *testing.T) {
	env := newPayrollEnv(t)
	_, err := env.uc.Generate(context.Background(), 3, 2024)
	require.NoError(t, err)
	rec, _ := env.payrolls.GetByEmployeePeriod(testEmpA, 3, 2024)

	_, err = env.uc.MarkPaid(context.Background(), "user-1", rec.ID)
	require.NoError(t, err)

	_, err = env.uc.MarkPaid(context.Background(), "user-1", rec.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Len(t, env.ledger.entries, 1, "un solo asiento por nómina")
}

func TestMarkPaid_Inexistente(t *testing.T) {
	env := newPayrollEnv(t)

	_, err := env.uc.MarkPaid(context.Background(), "user-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
