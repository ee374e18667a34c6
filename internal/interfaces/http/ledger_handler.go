package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/ledger"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// LedgerHandler maneja el libro contable.
type LedgerHandler struct {
	uc       *ledger.UseCase
	recorder *audit.Recorder
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase, recorder *audit.Recorder) *LedgerHandler {
	return &LedgerHandler{uc: uc, recorder: recorder}
}

// Append asienta una entrada manual (INCOME o EXPENSE).
// POST /api/ledger
func (h *LedgerHandler) Append(c *fiber.Ctx) error {
	var in dto.CreateLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	entry, err := h.uc.Append(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "append", "ledger_entry", entry.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List consulta entradas (?type=&category=&limit=).
// GET /api/ledger
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := repository.LedgerFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Limit:    limit,
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Summary devuelve ingresos, gastos y balance acumulados. Siempre se recalcula
// desde el libro, nunca se cachea.
// GET /api/ledger/summary
func (h *LedgerHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// MonthlyReport devuelve el reporte de un mes (?year=2026&month=8).
// GET /api/ledger/report
func (h *LedgerHandler) MonthlyReport(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	report, err := h.uc.MonthlyReport(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
