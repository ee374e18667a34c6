package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// AttendanceHandler maneja el registro y consulta de asistencia.
type AttendanceHandler struct {
	uc         *usecase.AttendanceUseCase
	employeeUC *usecase.EmployeeUseCase
	recorder   *audit.Recorder
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase, employeeUC *usecase.EmployeeUseCase, recorder *audit.Recorder) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, employeeUC: employeeUC, recorder: recorder}
}

// Record registra (o reemplaza) la asistencia de un empleado en una fecha.
// POST /api/attendance
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var in dto.AttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.uc.Record(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "record", "attendance", rec.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// RecordBulk registra la asistencia de varios empleados para una fecha.
// Valida el lote completo antes de escribir: un empleado inválido rechaza todo.
// POST /api/attendance/bulk
func (h *AttendanceHandler) RecordBulk(c *fiber.Ctx) error {
	var in dto.BulkAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	recs, err := h.uc.RecordBulk(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "record_bulk", "attendance", in.Date, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(recs)
}

// List consulta asistencia con filtros opcionales (?employee_id=&start_date=&end_date=).
// Los roles self-only solo ven su propia asistencia.
// GET /api/attendance
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	filter := repository.AttendanceFilter{
		EmployeeID: c.Query("employee_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}
	if IsSelfOnly(c) {
		emp, err := h.employeeUC.GetByUserID(GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		filter.EmployeeID = emp.ID
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
