package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, user_id, employee_code, name, email, phone, department, designation, salary, hire_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var userID *string
	err := row.Scan(&e.ID, &userID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone,
		&e.Department, &e.Designation, &e.Salary, &e.HireDate, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if userID != nil {
		e.UserID = *userID
	}
	return &e, nil
}

// nullable convierte "" a NULL para columnas con FK opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		emp.ID, nullable(emp.UserID), emp.EmployeeCode, emp.Name, emp.Email, emp.Phone,
		emp.Department, emp.Designation, emp.Salary, emp.HireDate, emp.Status,
		emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByCode obtiene un empleado por código.
func (r *EmployeeRepo) GetByCode(code string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		return nil, fmt.Errorf("get employee by code: %w", err)
	}
	return e, nil
}

// GetByUserID obtiene el empleado ligado a un usuario.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	e, err := scanEmployee(r.q.QueryRow(context.Background(), query, userID))
	if err != nil {
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return e, nil
}

// List devuelve los empleados, opcionalmente filtrados por status.
func (r *EmployeeRepo) List(status string) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY employee_code`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var userID *string
		if err := rows.Scan(&e.ID, &userID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone,
			&e.Department, &e.Designation, &e.Salary, &e.HireDate, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if userID != nil {
			e.UserID = *userID
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado. El código no se toca.
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, email = $3, phone = $4, department = $5, designation = $6,
		    salary = $7, hire_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		emp.ID, emp.Name, emp.Email, emp.Phone, emp.Department, emp.Designation,
		emp.Salary, emp.HireDate, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Terminate marca un empleado como terminado (borrado suave).
func (r *EmployeeRepo) Terminate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE employees SET status = 'terminated', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("terminate employee: %w", err)
	}
	return nil
}
