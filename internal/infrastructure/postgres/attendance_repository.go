package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository (usable con pool o tx).
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Upsert inserta la asistencia; si ya existe (employee_id, date) la reemplaza.
func (r *AttendanceRepo) Upsert(rec *entity.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (id, employee_id, date, check_in, check_out, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, check_out = EXCLUDED.check_out,
		    status = EXCLUDED.status, notes = EXCLUDED.notes`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.EmployeeID, rec.Date, rec.CheckIn, rec.CheckOut, rec.Status, rec.Notes, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// List devuelve los registros según el filtro (empleado y rango de fechas).
func (r *AttendanceRepo) List(filter repository.AttendanceFilter) ([]*entity.AttendanceRecord, error) {
	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out, status, notes, created_at
		FROM attendance WHERE 1=1`
	var args []any
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(` AND employee_id = $%d`, len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date DESC, employee_id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttendanceRecord
	for rows.Next() {
		var rec entity.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// CountPresent cuenta los días present o late del empleado en el período y
// si existe al menos un registro de ese mes (para la política de nómina
// "sin datos = asistencia completa").
func (r *AttendanceRepo) CountPresent(employeeID string, month, year int) (int, bool, error) {
	query := `
		SELECT count(*) FILTER (WHERE status IN ('present', 'late')), count(*)
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3`
	var present, total int
	err := r.q.QueryRow(context.Background(), query, employeeID, month, year).Scan(&present, &total)
	if err != nil {
		return 0, false, fmt.Errorf("count attendance: %w", err)
	}
	return present, total > 0, nil
}
