package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// EmployeeHandler maneja la ficha de empleados.
type EmployeeHandler struct {
	uc       *usecase.EmployeeUseCase
	recorder *audit.Recorder
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, recorder *audit.Recorder) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, recorder: recorder}
}

// Create crea un empleado.
// POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	emp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "employee", emp.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// List lista empleados, opcionalmente por estado (?status=active).
// GET /api/employees
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un empleado.
// GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	emp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(emp)
}

// Update actualiza la ficha (el código de empleado es inmutable).
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	emp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "employee", emp.ID, "", c.IP())
	return c.JSON(emp)
}

// Terminate marca al empleado como terminado (soft delete).
// DELETE /api/employees/:id
func (h *EmployeeHandler) Terminate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Terminate(id); err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "terminate", "employee", id, "", c.IP())
	return c.JSON(dto.MessageResponse{Message: "empleado terminado"})
}
