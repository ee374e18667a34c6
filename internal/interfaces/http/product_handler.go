package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// ProductHandler maneja el catálogo de productos e inventario.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	recorder *audit.Recorder
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, recorder *audit.Recorder) *ProductHandler {
	return &ProductHandler{uc: uc, recorder: recorder}
}

// Create crea un producto.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "product", product.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List lista productos (?status=active&low_stock=true).
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Status:   c.Query("status"),
		LowStock: c.QueryBool("low_stock"),
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un producto.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Update actualiza un producto (SKU y stock no se tocan por esta vía).
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "product", product.ID, "", c.IP())
	return c.JSON(product)
}

// AdjustStock ajusta el stock manualmente (delta positivo o negativo con razón).
// POST /api/products/:id/adjust-stock
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	product, err := h.uc.AdjustStock(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "adjust_stock", "product", product.ID, in.Reason, c.IP())
	return c.JSON(product)
}

// Deactivate desactiva un producto (soft delete).
// DELETE /api/products/:id
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Deactivate(id); err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "deactivate", "product", id, "", c.IP())
	return c.JSON(dto.MessageResponse{Message: "producto desactivado"})
}
