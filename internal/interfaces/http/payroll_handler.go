package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/payroll"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// PayrollHandler maneja la generación, consulta y pago de nómina.
type PayrollHandler struct {
	uc         *payroll.UseCase
	employeeUC *usecase.EmployeeUseCase
	recorder   *audit.Recorder
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase, employeeUC *usecase.EmployeeUseCase, recorder *audit.Recorder) *PayrollHandler {
	return &PayrollHandler{uc: uc, employeeUC: employeeUC, recorder: recorder}
}

// Generate genera la nómina del período para todos los empleados activos.
// Es idempotente: los registros ya existentes del período se omiten.
// POST /api/payroll/generate
func (h *PayrollHandler) Generate(c *fiber.Ctx) error {
	var in dto.GeneratePayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Generate(c.Context(), in.Month, in.Year)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "generate", "payroll", "", out.Message, c.IP())
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List consulta la nómina (?month=&year=). Los roles self-only solo ven la propia.
// GET /api/payroll
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	if IsSelfOnly(c) {
		emp, err := h.employeeUC.GetByUserID(GetUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		list, err := h.uc.ListByEmployee(c.Context(), emp.ID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	list, err := h.uc.List(c.Context(), month, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un registro de nómina.
// GET /api/payroll/:id
func (h *PayrollHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if IsSelfOnly(c) {
		emp, err := h.employeeUC.GetByUserID(GetUserID(c))
		if err != nil || rec.EmployeeID != emp.ID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
	}
	return c.JSON(rec)
}

// MarkPaid marca un registro como pagado y asienta el gasto en el libro.
// POST /api/payroll/:id/pay
func (h *PayrollHandler) MarkPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, err := h.uc.MarkPaid(c.Context(), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "pay", "payroll", id, "", c.IP())
	return c.JSON(rec)
}
