package dto

// AttendanceRequest registro (o reemplazo) de asistencia de un empleado.
type AttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// BulkAttendanceRequest registro masivo para una fecha.
type BulkAttendanceRequest struct {
	Date    string                `json:"date"`
	Records []BulkAttendanceEntry `json:"records"`
}

// BulkAttendanceEntry entrada individual del registro masivo.
type BulkAttendanceEntry struct {
	EmployeeID string `json:"employee_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// AttendanceResponse asistencia con datos del empleado.
type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in,omitempty"`
	CheckOut     string `json:"check_out,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}
