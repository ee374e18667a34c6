package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// SalesHandler maneja órdenes de venta y facturas.
type SalesHandler struct {
	uc       *orders.SalesUseCase
	pdfUC    *orders.PDFUseCase
	recorder *audit.Recorder
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *orders.SalesUseCase, pdfUC *orders.PDFUseCase, recorder *audit.Recorder) *SalesHandler {
	return &SalesHandler{uc: uc, pdfUC: pdfUC, recorder: recorder}
}

// Create crea una orden de venta en estado pending. No toca stock.
// POST /api/sales
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	order, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "sales_order", order.ID, order.OrderNumber, c.IP())
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List lista órdenes de venta (?status=&customer_id=).
// GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	filter := repository.SalesOrderFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene una orden con sus líneas.
// GET /api/sales/:id
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// Confirm confirma la orden: descuenta stock, emite la factura y asienta el
// ingreso en el libro, todo en una transacción.
// POST /api/sales/:id/confirm
func (h *SalesHandler) Confirm(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.uc.Confirm(c.Context(), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "confirm", "sales_order", id, order.OrderNumber, c.IP())
	return c.JSON(order)
}

// Cancel cancela una orden pendiente.
// POST /api/sales/:id/cancel
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.uc.Cancel(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "cancel", "sales_order", id, order.OrderNumber, c.IP())
	return c.JSON(order)
}

// ListInvoices lista las facturas emitidas.
// GET /api/invoices
func (h *SalesHandler) ListInvoices(c *fiber.Ctx) error {
	list, err := h.uc.ListInvoices(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetInvoice obtiene una factura.
// GET /api/invoices/:id
func (h *SalesHandler) GetInvoice(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// DownloadInvoicePDF genera y descarga el PDF de una factura.
// GET /api/invoices/:id/pdf
func (h *SalesHandler) DownloadInvoicePDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
