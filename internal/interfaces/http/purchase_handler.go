package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// PurchaseHandler maneja órdenes de compra.
type PurchaseHandler struct {
	uc       *orders.PurchaseUseCase
	recorder *audit.Recorder
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *orders.PurchaseUseCase, recorder *audit.Recorder) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, recorder: recorder}
}

// Create crea una orden de compra en estado pending.
// POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	order, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "purchase_order", order.ID, order.OrderNumber, c.IP())
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List lista órdenes de compra (?status=&supplier_id=).
// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	filter := repository.PurchaseOrderFilter{
		Status:     c.Query("status"),
		SupplierID: c.Query("supplier_id"),
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene una orden con sus líneas.
// GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Receive marca la orden como recibida: incrementa stock y asienta el gasto
// en el libro, todo en una transacción.
// POST /api/purchases/:id/receive
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.uc.Receive(c.Context(), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "receive", "purchase_order", id, order.OrderNumber, c.IP())
	return c.JSON(order)
}

// Cancel cancela una orden pendiente.
// POST /api/purchases/:id/cancel
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.uc.Cancel(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "cancel", "purchase_order", id, order.OrderNumber, c.IP())
	return c.JSON(order)
}
