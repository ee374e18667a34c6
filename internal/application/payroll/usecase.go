package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	payrollcalc "github.com/tu-usuario/erp-pyme/internal/domain/payroll"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// UseCase genera y paga la nómina. La generación es idempotente por
// (empleado, mes, año); el pago es transaccional y registra el asiento
// EXPENSE en el libro.
type UseCase struct {
	txRunner       TxRunner
	payrollRepo    repository.PayrollRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	payrollRepo repository.PayrollRepository,
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Generate crea los registros pendientes del período para todos los empleados
// activos que aún no lo tengan. La deducción sale de la asistencia; un
// empleado sin registros del mes cuenta como asistencia completa.
// Reejecutar con el mismo período no duplica ni recalcula nada.
func (uc *UseCase) Generate(ctx context.Context, month, year int) (*dto.GeneratePayrollResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, domain.ErrInvalidInput
	}

	employees, err := uc.employeeRepo.List(entity.EmployeeActive)
	if err != nil {
		return nil, err
	}

	workDays := payrollcalc.WorkDays(month, year)
	now := time.Now()
	records := make([]*entity.PayrollRecord, 0, len(employees))
	for _, emp := range employees {
		existing, err := uc.payrollRepo.GetByEmployeePeriod(emp.ID, month, year)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		presentDays, hasRecords, err := uc.attendanceRepo.CountPresent(emp.ID, month, year)
		if err != nil {
			return nil, err
		}
		if !hasRecords {
			presentDays = workDays
		}

		deduction := payrollcalc.Deduction(emp.Salary, workDays, presentDays)
		records = append(records, &entity.PayrollRecord{
			ID:          uuid.New().String(),
			EmployeeID:  emp.ID,
			Month:       month,
			Year:        year,
			BasicSalary: emp.Salary,
			Deductions:  deduction,
			NetSalary:   payrollcalc.NetSalary(emp.Salary, deduction),
			Status:      entity.PayrollPending,
			CreatedAt:   now,
		})
	}

	if len(records) > 0 {
		err = uc.txRunner.RunPayroll(ctx, func(
			payrollRepo repository.PayrollRepository,
			_ repository.LedgerRepository,
		) error {
			for _, rec := range records {
				if err := payrollRepo.Create(rec); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.GeneratePayrollResponse{
		Generated: len(records),
		Message:   fmt.Sprintf("nómina %02d/%d: %d registros generados", month, year, len(records)),
	}, nil
}

// MarkPaid ejecuta pending -> paid una sola vez: estampa paid_date y registra
// el asiento EXPENSE por el salario neto, en la misma transacción.
func (uc *UseCase) MarkPaid(ctx context.Context, userID, id string) (*dto.PayrollResponse, error) {
	var rec *entity.PayrollRecord

	err := uc.txRunner.RunPayroll(ctx, func(
		payrollRepo repository.PayrollRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		var err error
		rec, err = payrollRepo.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if rec.Status == entity.PayrollPaid {
			return domain.ErrAlreadyPaid
		}

		now := time.Now()
		if err := payrollRepo.MarkPaid(id, now); err != nil {
			return err
		}
		rec.Status = entity.PayrollPaid
		rec.PaidDate = &now

		entry := &entity.LedgerEntry{
			ID:              uuid.New().String(),
			Type:            entity.LedgerExpense,
			Category:        "Salary",
			Amount:          rec.NetSalary,
			Description:     fmt.Sprintf("Pago de nómina %02d/%d", rec.Month, rec.Year),
			ReferenceType:   entity.RefPayroll,
			ReferenceID:     rec.ID,
			UserID:          userID,
			TransactionDate: now,
			CreatedAt:       now,
		}
		return ledgerRepo.Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(rec), nil
}

// Get devuelve un registro de nómina por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.PayrollResponse, error) {
	rec, err := uc.payrollRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(rec), nil
}

// List devuelve los registros del período (o todos si month/year son cero).
func (uc *UseCase) List(ctx context.Context, month, year int) ([]*dto.PayrollResponse, error) {
	records, err := uc.payrollRepo.List(month, year)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(records), nil
}

// ListByEmployee devuelve el historial de nómina de un empleado. Es la vista
// que reciben los usuarios con acceso restringido a lo propio.
func (uc *UseCase) ListByEmployee(ctx context.Context, employeeID string) ([]*dto.PayrollResponse, error) {
	records, err := uc.payrollRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(records), nil
}

func (uc *UseCase) toResponse(rec *entity.PayrollRecord) *dto.PayrollResponse {
	resp := &dto.PayrollResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Month:       rec.Month,
		Year:        rec.Year,
		BasicSalary: rec.BasicSalary,
		Deductions:  rec.Deductions,
		NetSalary:   rec.NetSalary,
		Status:      rec.Status,
	}
	if rec.PaidDate != nil {
		resp.PaidDate = rec.PaidDate.Format("2006-01-02")
	}
	if emp, err := uc.employeeRepo.GetByID(rec.EmployeeID); err == nil && emp != nil {
		resp.EmployeeName = emp.Name
		resp.Department = emp.Department
	}
	return resp
}

func (uc *UseCase) toResponses(records []*entity.PayrollRecord) []*dto.PayrollResponse {
	out := make([]*dto.PayrollResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, uc.toResponse(rec))
	}
	return out
}
