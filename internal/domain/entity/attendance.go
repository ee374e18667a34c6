package entity

import "time"

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
	AttendanceLeave   = "leave"
)

// AttendanceRecord asistencia de un empleado en una fecha.
// La pareja (EmployeeID, Date) es única; re-registrar reemplaza el registro.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	CheckIn    string
	CheckOut   string
	Status     string
	Notes      string
	CreatedAt  time.Time
}
