package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// AttendanceFilter filtros de listado de asistencia.
type AttendanceFilter struct {
	EmployeeID string
	StartDate  string // YYYY-MM-DD
	EndDate    string
}

// AttendanceRepository define el puerto de persistencia para asistencia.
// Upsert reemplaza el registro si ya existe (employee_id, date).
type AttendanceRepository interface {
	Upsert(rec *entity.AttendanceRecord) error
	List(filter AttendanceFilter) ([]*entity.AttendanceRecord, error)
	// CountPresent cuenta registros con status present o late para el período.
	// Devuelve también si existe al menos un registro del período (para la
	// política "sin datos = asistencia completa").
	CountPresent(employeeID string, month, year int) (count int, hasRecords bool, err error)
}
