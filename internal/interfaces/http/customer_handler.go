package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// CustomerHandler maneja el directorio de clientes.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	recorder *audit.Recorder
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, recorder *audit.Recorder) *CustomerHandler {
	return &CustomerHandler{uc: uc, recorder: recorder}
}

// Create crea un cliente.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "customer", customer.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List lista clientes (?status=active).
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un cliente.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Update actualiza un cliente.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	customer, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "customer", customer.ID, "", c.IP())
	return c.JSON(customer)
}

// Deactivate desactiva un cliente (soft delete).
// DELETE /api/customers/:id
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Deactivate(id); err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "deactivate", "customer", id, "", c.IP())
	return c.JSON(dto.MessageResponse{Message: "cliente desactivado"})
}
