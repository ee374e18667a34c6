package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación de PayrollRepository (usable con pool o tx).
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

const payrollColumns = `id, employee_id, month, year, basic_salary, allowances, deductions, net_salary, status, paid_date, created_at`

func scanPayroll(row pgx.Row) (*entity.PayrollRecord, error) {
	var rec entity.PayrollRecord
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
		&rec.Allowances, &rec.Deductions, &rec.NetSalary, &rec.Status, &rec.PaidDate, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Create persiste un registro de nómina. La terna (employee_id, month, year)
// es única; duplicarla devuelve ErrDuplicate.
func (r *PayrollRepo) Create(rec *entity.PayrollRecord) error {
	query := `
		INSERT INTO payroll (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.EmployeeID, rec.Month, rec.Year, rec.BasicSalary,
		rec.Allowances, rec.Deductions, rec.NetSalary, rec.Status, rec.PaidDate, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payroll: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de nómina por ID.
func (r *PayrollRepo) GetByID(id string) (*entity.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE id = $1`
	rec, err := scanPayroll(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get payroll: %w", err)
	}
	return rec, nil
}

// GetByEmployeePeriod obtiene el registro del empleado para un período.
func (r *PayrollRepo) GetByEmployeePeriod(employeeID string, month, year int) (*entity.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE employee_id = $1 AND month = $2 AND year = $3`
	rec, err := scanPayroll(r.q.QueryRow(context.Background(), query, employeeID, month, year))
	if err != nil {
		return nil, fmt.Errorf("get payroll by period: %w", err)
	}
	return rec, nil
}

// List devuelve los registros del período; month/year en cero no filtran.
func (r *PayrollRepo) List(month, year int) ([]*entity.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE 1=1`
	var args []any
	if month != 0 {
		args = append(args, month)
		query += fmt.Sprintf(` AND month = $%d`, len(args))
	}
	if year != 0 {
		args = append(args, year)
		query += fmt.Sprintf(` AND year = $%d`, len(args))
	}
	query += ` ORDER BY year DESC, month DESC, employee_id`
	return r.list(query, args...)
}

// ListByEmployee devuelve el historial de nómina de un empleado.
func (r *PayrollRepo) ListByEmployee(employeeID string) ([]*entity.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll WHERE employee_id = $1 ORDER BY year DESC, month DESC`
	return r.list(query, employeeID)
}

func (r *PayrollRepo) list(query string, args ...any) ([]*entity.PayrollRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payroll: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollRecord
	for rows.Next() {
		var rec entity.PayrollRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
			&rec.Allowances, &rec.Deductions, &rec.NetSalary, &rec.Status, &rec.PaidDate, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// MarkPaid estampa el pago. Solo transiciona registros pendientes.
func (r *PayrollRepo) MarkPaid(id string, paidDate time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payroll SET status = 'paid', paid_date = $2 WHERE id = $1 AND status = 'pending'`,
		id, paidDate)
	if err != nil {
		return fmt.Errorf("mark payroll paid: %w", err)
	}
	return nil
}
