package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// SupplierHandler maneja el directorio de proveedores.
type SupplierHandler struct {
	uc       *usecase.SupplierUseCase
	recorder *audit.Recorder
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, recorder *audit.Recorder) *SupplierHandler {
	return &SupplierHandler{uc: uc, recorder: recorder}
}

// Create crea un proveedor.
// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "supplier", supplier.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// List lista proveedores (?status=active).
// GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un proveedor.
// GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Update actualiza un proveedor.
// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	supplier, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "supplier", supplier.ID, "", c.IP())
	return c.JSON(supplier)
}

// Deactivate desactiva un proveedor (soft delete).
// DELETE /api/suppliers/:id
func (h *SupplierHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Deactivate(id); err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "deactivate", "supplier", id, "", c.IP())
	return c.JSON(dto.MessageResponse{Message: "proveedor desactivado"})
}
